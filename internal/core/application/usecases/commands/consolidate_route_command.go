package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrConsolidateRouteCommandIsNotConstructed = errors.New(
	"ConsolidateRouteCommand must be created via NewConsolidateRouteCommand constructor",
)

// ConsolidateRouteCommand represents a request to run one consolidation
// route: every order waiting on it is moved to the province warehouse.
type ConsolidateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConsolidateRouteCommand creates a command to consolidate a route.
func NewConsolidateRouteCommand(routeID kernel.UUID) (ConsolidateRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return ConsolidateRouteCommand{}, err
	}

	return ConsolidateRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConsolidateRouteCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateRouteCommandIsNotConstructed)
}

// RouteID returns the route to consolidate.
func (c ConsolidateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}
