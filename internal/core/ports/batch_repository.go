package ports

import (
	"context"
	"time"

	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for batch aggregates.
type BatchRepository interface {
	// Add persists a new batch aggregate to storage.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists changes to an existing batch aggregate.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetAllModifiableByOfficePair retrieves the batches between two
	// offices that are still open for modification. Used by the packer to
	// fill existing batches before opening new ones.
	GetAllModifiableByOfficePair(ctx context.Context, originOfficeID, destinationOfficeID kernel.UUID) ([]*batch.Batch, error)

	// GetAllOutstandingBetweenRegions retrieves the sealed and in-transit
	// batches whose origin lies in one region and destination in another.
	// Used to snapshot the traffic caught by a route disruption.
	GetAllOutstandingBetweenRegions(ctx context.Context, fromRegionID, toRegionID kernel.RegionID) ([]*batch.Batch, error)

	// GetAllSealableOlderThan retrieves the modifiable batches created
	// before the cutoff that hold at least minOrders orders. Used by the
	// automatic sealing sweep.
	GetAllSealableOlderThan(ctx context.Context, cutoff time.Time, minOrders int) ([]*batch.Batch, error)
}
