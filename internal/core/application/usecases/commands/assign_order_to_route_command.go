package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrAssignOrderToRouteCommandIsNotConstructed = errors.New(
	"AssignOrderToRouteCommand must be created via NewAssignOrderToRouteCommand constructor",
)

// AssignOrderToRouteCommand represents a request to place an accepted order
// on a consolidation route. With an explicit route the assignment is
// validated against it; without one the first active route of the origin
// province serving the order's origin ward is picked.
type AssignOrderToRouteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	routeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderToRouteCommand creates a command to assign an order to a
// consolidation route. routeID is optional.
func NewAssignOrderToRouteCommand(orderID kernel.UUID, routeID *kernel.UUID) (AssignOrderToRouteCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderToRouteCommand{}, err
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return AssignOrderToRouteCommand{}, err
		}
	}

	return AssignOrderToRouteCommand{
		orderID: orderID,
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderToRouteCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignOrderToRouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RouteID returns the explicit target route, nil for automatic selection.
func (c AssignOrderToRouteCommand) RouteID() *kernel.UUID {
	return c.routeID
}
