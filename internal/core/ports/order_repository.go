package ports

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
)

// BatchableOfficePair identifies an office pair that has unbatched orders
// waiting to be packed.
type BatchableOfficePair struct {
	OfficeID            kernel.UUID
	DestinationOfficeID kernel.UUID
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingByConsolidationRoute retrieves the orders assigned to a
	// consolidation route that have not been consolidated yet.
	GetAllPendingByConsolidationRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error)

	// GetAllByBatch retrieves every order belonging to a batch.
	GetAllByBatch(ctx context.Context, batchID kernel.UUID) ([]*order.Order, error)

	// GetAllBatchableAtOffice retrieves the unbatched orders sitting at an
	// office and addressed to the given destination office. Used by the
	// automatic batching sweep.
	GetAllBatchableAtOffice(ctx context.Context, officeID, destinationOfficeID kernel.UUID) ([]*order.Order, error)

	// GetBatchableOfficePairs retrieves the distinct office pairs with
	// unbatched orders waiting. Drives the automatic batching sweep.
	GetBatchableOfficePairs(ctx context.Context) ([]BatchableOfficePair, error)
}
