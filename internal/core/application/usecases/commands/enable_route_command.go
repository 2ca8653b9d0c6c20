package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrEnableRouteCommandIsNotConstructed = errors.New(
	"EnableRouteCommand must be created via NewEnableRouteCommand constructor",
)

// EnableRouteCommand represents a request to put a disabled transfer route
// back in service and close its disruption record.
type EnableRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEnableRouteCommand creates a command to enable a transfer route.
func NewEnableRouteCommand(routeID kernel.UUID) (EnableRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return EnableRouteCommand{}, err
	}

	return EnableRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EnableRouteCommand) Validate() error {
	return c.guard.Validate(ErrEnableRouteCommandIsNotConstructed)
}

// RouteID returns the route to enable.
func (c EnableRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}
