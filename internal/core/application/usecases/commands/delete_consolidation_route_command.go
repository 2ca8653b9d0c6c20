package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrDeleteConsolidationRouteCommandIsNotConstructed = errors.New(
	"DeleteConsolidationRouteCommand must be created via NewDeleteConsolidationRouteCommand constructor",
)

// DeleteConsolidationRouteCommand represents a request to remove a
// consolidation route from the network.
type DeleteConsolidationRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteConsolidationRouteCommand creates a command to delete a route.
func NewDeleteConsolidationRouteCommand(routeID kernel.UUID) (DeleteConsolidationRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return DeleteConsolidationRouteCommand{}, err
	}

	return DeleteConsolidationRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteConsolidationRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteConsolidationRouteCommandIsNotConstructed)
}

// RouteID returns the route to delete.
func (c DeleteConsolidationRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}
