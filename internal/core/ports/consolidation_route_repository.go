package ports

import (
	"context"

	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/kernel"
)

// ConsolidationRouteRepository defines the persistence contract for
// consolidation route aggregates.
type ConsolidationRouteRepository interface {
	// Add persists a new consolidation route to storage.
	Add(ctx context.Context, aggregate *consolidation.Route) error

	// Update persists changes to an existing consolidation route.
	Update(ctx context.Context, aggregate *consolidation.Route) error

	// Get retrieves a consolidation route by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*consolidation.Route, error)

	// Delete removes a consolidation route. Callers must ensure no pending
	// orders reference it.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllActive retrieves every active consolidation route.
	GetAllActive(ctx context.Context) ([]*consolidation.Route, error)

	// GetAllActiveByProvince retrieves the active consolidation routes of
	// one province, in creation order. Order assignment picks the first
	// route serving the destination ward.
	GetAllActiveByProvince(ctx context.Context, provinceCode kernel.ProvinceCode) ([]*consolidation.Route, error)
}
