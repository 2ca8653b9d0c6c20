package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var (
	ErrCreateConsolidationRouteCommandIsNotConstructed = errors.New(
		"CreateConsolidationRouteCommand must be created via NewCreateConsolidationRouteCommand constructor",
	)
	ErrRouteNameIsRequired  = errors.New("route name is required")
	ErrWardStopsAreRequired = errors.New("at least one ward stop is required")
)

// CreateConsolidationRouteCommand represents a request to define a
// ward-to-warehouse consolidation route inside one province.
type CreateConsolidationRouteCommand struct { //nolint:recvcheck //using for validation
	routeID                kernel.UUID
	name                   string
	provinceCode           kernel.ProvinceCode
	destinationWarehouseID kernel.UUID
	wardCodes              []kernel.WardCode
	maxWeightKg            *float64
	maxVolumeCm3           *float64
	maxOrders              *int

	guard guard.ConstructorGuard
}

// NewCreateConsolidationRouteCommand creates a command to define a
// consolidation route. Capacity limits are optional.
func NewCreateConsolidationRouteCommand(
	routeID kernel.UUID,
	name string,
	provinceCode kernel.ProvinceCode,
	destinationWarehouseID kernel.UUID,
	wardCodes []kernel.WardCode,
	maxWeightKg, maxVolumeCm3 *float64,
	maxOrders *int,
) (CreateConsolidationRouteCommand, error) {
	routeCommand := CreateConsolidationRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeCommand.setRouteID(routeID),
		routeCommand.setName(name),
		routeCommand.setProvinceCode(provinceCode),
		routeCommand.setDestinationWarehouseID(destinationWarehouseID),
		routeCommand.setWardCodes(wardCodes),
		routeCommand.setCapacity(maxWeightKg, maxVolumeCm3, maxOrders),
	); err != nil {
		return CreateConsolidationRouteCommand{}, err
	}

	return routeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateConsolidationRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateConsolidationRouteCommandIsNotConstructed)
}

// RouteID returns the unique identifier for the route.
func (c CreateConsolidationRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Name returns the human-readable route name.
func (c CreateConsolidationRouteCommand) Name() string {
	return c.name
}

// ProvinceCode returns the province the route operates in.
func (c CreateConsolidationRouteCommand) ProvinceCode() kernel.ProvinceCode {
	return c.provinceCode
}

// DestinationWarehouseID returns the province warehouse the route feeds.
func (c CreateConsolidationRouteCommand) DestinationWarehouseID() kernel.UUID {
	return c.destinationWarehouseID
}

// WardCodes returns the ward stops served by the route.
func (c CreateConsolidationRouteCommand) WardCodes() []kernel.WardCode {
	return c.wardCodes
}

// Capacity returns the optional capacity limits of the route.
func (c CreateConsolidationRouteCommand) Capacity() (maxWeightKg, maxVolumeCm3 *float64, maxOrders *int) {
	return c.maxWeightKg, c.maxVolumeCm3, c.maxOrders
}

func (c *CreateConsolidationRouteCommand) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.routeID = id
	return nil
}

func (c *CreateConsolidationRouteCommand) setName(name string) error {
	if name == "" {
		return ErrRouteNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateConsolidationRouteCommand) setProvinceCode(code kernel.ProvinceCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.provinceCode = code
	return nil
}

func (c *CreateConsolidationRouteCommand) setDestinationWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.destinationWarehouseID = id
	return nil
}

func (c *CreateConsolidationRouteCommand) setWardCodes(wardCodes []kernel.WardCode) error {
	if len(wardCodes) == 0 {
		return ErrWardStopsAreRequired
	}
	for _, ward := range wardCodes {
		if err := ward.Validate(); err != nil {
			return err
		}
	}

	c.wardCodes = wardCodes
	return nil
}

func (c *CreateConsolidationRouteCommand) setCapacity(maxWeightKg, maxVolumeCm3 *float64, maxOrders *int) error {
	if maxWeightKg != nil && *maxWeightKg <= 0 {
		return errs.NewValueIsInvalidError("maxWeightKg")
	}
	if maxVolumeCm3 != nil && *maxVolumeCm3 <= 0 {
		return errs.NewValueIsInvalidError("maxVolumeCm3")
	}
	if maxOrders != nil && *maxOrders <= 0 {
		return errs.NewValueIsInvalidError("maxOrders")
	}

	c.maxWeightKg = maxWeightKg
	c.maxVolumeCm3 = maxVolumeCm3
	c.maxOrders = maxOrders
	return nil
}
