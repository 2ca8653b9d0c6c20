package ports

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/transfer"
)

// TransferRouteRepository defines the persistence contract for hub-to-hub
// transfer routes.
type TransferRouteRepository interface {
	// Add persists a new transfer route to storage.
	Add(ctx context.Context, aggregate *transfer.Route) error

	// Update persists changes to an existing transfer route.
	Update(ctx context.Context, aggregate *transfer.Route) error

	// Get retrieves a transfer route by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transfer.Route, error)

	// GetByHubPair retrieves the directed route between two hubs.
	GetByHubPair(ctx context.Context, fromHubID, toHubID kernel.UUID) (*transfer.Route, error)

	// GetAllActive retrieves every active transfer route. Used to build
	// the routing graph and the alternative-route heuristic.
	GetAllActive(ctx context.Context) ([]*transfer.Route, error)
}

// DisruptionRepository defines the persistence contract for transfer route
// disruptions.
type DisruptionRepository interface {
	// Add persists a new disruption to storage.
	Add(ctx context.Context, aggregate *transfer.Disruption) error

	// Update persists changes to an existing disruption.
	Update(ctx context.Context, aggregate *transfer.Disruption) error

	// Get retrieves a disruption by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transfer.Disruption, error)

	// GetActiveByRoute retrieves the active disruption of a route, if any.
	// At most one disruption is active per route.
	GetActiveByRoute(ctx context.Context, routeID kernel.UUID) (*transfer.Disruption, error)

	// GetAllActive retrieves every active disruption across the network.
	GetAllActive(ctx context.Context) ([]*transfer.Disruption, error)

	// GetAllByRoute retrieves the full disruption history of a route,
	// newest first.
	GetAllByRoute(ctx context.Context, routeID kernel.UUID) ([]*transfer.Disruption, error)
}
