package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var ErrCreateTransferRouteCommandIsNotConstructed = errors.New(
	"CreateTransferRouteCommand must be created via NewCreateTransferRouteCommand constructor",
)

// CreateTransferRouteCommand represents a request to connect two regional
// hubs. The handler creates both directions of the connection so traffic
// can flow either way from the start.
type CreateTransferRouteCommand struct { //nolint:recvcheck //using for validation
	routeID      kernel.UUID
	fromHubID    kernel.UUID
	toHubID      kernel.UUID
	distanceKm   float64
	transitHours float64
	priority     int

	guard guard.ConstructorGuard
}

// NewCreateTransferRouteCommand creates a command to connect two hubs.
// Lower priority values are preferred during path search.
func NewCreateTransferRouteCommand(
	routeID kernel.UUID,
	fromHubID kernel.UUID,
	toHubID kernel.UUID,
	distanceKm float64,
	transitHours float64,
	priority int,
) (CreateTransferRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return CreateTransferRouteCommand{}, err
	}
	if err := fromHubID.Validate(); err != nil {
		return CreateTransferRouteCommand{}, err
	}
	if err := toHubID.Validate(); err != nil {
		return CreateTransferRouteCommand{}, err
	}
	if distanceKm <= 0 {
		return CreateTransferRouteCommand{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if transitHours <= 0 {
		return CreateTransferRouteCommand{}, errs.NewValueIsInvalidError("transitHours")
	}
	if priority < 1 {
		return CreateTransferRouteCommand{}, errs.NewValueIsInvalidError("priority")
	}

	return CreateTransferRouteCommand{
		routeID:      routeID,
		fromHubID:    fromHubID,
		toHubID:      toHubID,
		distanceKm:   distanceKm,
		transitHours: transitHours,
		priority:     priority,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransferRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransferRouteCommandIsNotConstructed)
}

// RouteID returns the identifier for the forward direction.
func (c CreateTransferRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// FromHubID returns the hub the route starts at.
func (c CreateTransferRouteCommand) FromHubID() kernel.UUID {
	return c.fromHubID
}

// ToHubID returns the hub the route ends at.
func (c CreateTransferRouteCommand) ToHubID() kernel.UUID {
	return c.toHubID
}

// DistanceKm returns the route length in kilometers.
func (c CreateTransferRouteCommand) DistanceKm() float64 {
	return c.distanceKm
}

// TransitHours returns the travel time between the hubs.
func (c CreateTransferRouteCommand) TransitHours() float64 {
	return c.transitHours
}

// Priority returns the route preference, lower is better.
func (c CreateTransferRouteCommand) Priority() int {
	return c.priority
}
