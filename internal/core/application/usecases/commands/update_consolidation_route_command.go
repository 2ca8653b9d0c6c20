package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var ErrUpdateConsolidationRouteCommandIsNotConstructed = errors.New(
	"UpdateConsolidationRouteCommand must be created via NewUpdateConsolidationRouteCommand constructor",
)

// UpdateConsolidationRouteCommand represents a request to change a
// consolidation route's name, ward stops, capacity, or active flag. Nil
// fields are left unchanged.
type UpdateConsolidationRouteCommand struct { //nolint:recvcheck //using for validation
	routeID      kernel.UUID
	name         *string
	wardCodes    []kernel.WardCode
	maxWeightKg  *float64
	maxVolumeCm3 *float64
	maxOrders    *int
	isActive     *bool

	updateCapacity bool

	guard guard.ConstructorGuard
}

// NewUpdateConsolidationRouteCommand creates a command to update a route.
// updateCapacity distinguishes "set capacity to these values" from "leave
// capacity untouched", since nil limits are themselves meaningful.
func NewUpdateConsolidationRouteCommand(
	routeID kernel.UUID,
	name *string,
	wardCodes []kernel.WardCode,
	updateCapacity bool,
	maxWeightKg, maxVolumeCm3 *float64,
	maxOrders *int,
	isActive *bool,
) (UpdateConsolidationRouteCommand, error) {
	routeCommand := UpdateConsolidationRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := routeCommand.setRouteID(routeID); err != nil {
		return UpdateConsolidationRouteCommand{}, err
	}

	if name != nil && *name == "" {
		return UpdateConsolidationRouteCommand{}, ErrRouteNameIsRequired
	}
	for _, ward := range wardCodes {
		if err := ward.Validate(); err != nil {
			return UpdateConsolidationRouteCommand{}, err
		}
	}
	if updateCapacity {
		if maxWeightKg != nil && *maxWeightKg <= 0 {
			return UpdateConsolidationRouteCommand{}, errs.NewValueIsInvalidError("maxWeightKg")
		}
		if maxVolumeCm3 != nil && *maxVolumeCm3 <= 0 {
			return UpdateConsolidationRouteCommand{}, errs.NewValueIsInvalidError("maxVolumeCm3")
		}
		if maxOrders != nil && *maxOrders <= 0 {
			return UpdateConsolidationRouteCommand{}, errs.NewValueIsInvalidError("maxOrders")
		}
	}

	routeCommand.name = name
	routeCommand.wardCodes = wardCodes
	routeCommand.updateCapacity = updateCapacity
	routeCommand.maxWeightKg = maxWeightKg
	routeCommand.maxVolumeCm3 = maxVolumeCm3
	routeCommand.maxOrders = maxOrders
	routeCommand.isActive = isActive

	return routeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsolidationRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsolidationRouteCommandIsNotConstructed)
}

// RouteID returns the route to update.
func (c UpdateConsolidationRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Name returns the new name, nil to keep the current one.
func (c UpdateConsolidationRouteCommand) Name() *string {
	return c.name
}

// WardCodes returns the new ward stops, empty to keep the current ones.
func (c UpdateConsolidationRouteCommand) WardCodes() []kernel.WardCode {
	return c.wardCodes
}

// UpdateCapacity reports whether the capacity limits should be replaced.
func (c UpdateConsolidationRouteCommand) UpdateCapacity() bool {
	return c.updateCapacity
}

// Capacity returns the replacement capacity limits.
func (c UpdateConsolidationRouteCommand) Capacity() (maxWeightKg, maxVolumeCm3 *float64, maxOrders *int) {
	return c.maxWeightKg, c.maxVolumeCm3, c.maxOrders
}

// IsActive returns the new active flag, nil to keep the current one.
func (c UpdateConsolidationRouteCommand) IsActive() *bool {
	return c.isActive
}

func (c *UpdateConsolidationRouteCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.routeID = id
	return nil
}
