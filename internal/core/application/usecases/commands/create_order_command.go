package commands

import (
	"errors"
	"fmt"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
	ErrWeightIsInvalid          = errors.New("chargeable weight must be greater than 0")
)

// CreateOrderCommand represents a request to register a new parcel.
// Encapsulates the parcel's endpoints, weight, and optional dimensions.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "VN123456789", originID, destID, ward, 2.5, nil, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	trackingNumber      string
	originOfficeID      kernel.UUID
	destinationOfficeID kernel.UUID
	destinationWardCode kernel.WardCode
	chargeableWeightKg  float64
	lengthCm            *float64
	widthCm             *float64
	heightCm            *float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new parcel.
// Dimensions are optional but must be supplied together.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	trackingNumber string,
	originOfficeID kernel.UUID,
	destinationOfficeID kernel.UUID,
	destinationWardCode kernel.WardCode,
	chargeableWeightKg float64,
	lengthCm, widthCm, heightCm *float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTrackingNumber(trackingNumber),
		orderCommand.setOriginOfficeID(originOfficeID),
		orderCommand.setDestinationOfficeID(destinationOfficeID),
		orderCommand.setDestinationWardCode(destinationWardCode),
		orderCommand.setWeight(chargeableWeightKg),
		orderCommand.setDimensions(lengthCm, widthCm, heightCm),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the customer-facing tracking number.
func (c CreateOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

// OriginOfficeID returns the office accepting the parcel.
func (c CreateOrderCommand) OriginOfficeID() kernel.UUID {
	return c.originOfficeID
}

// DestinationOfficeID returns the office the parcel is addressed to.
func (c CreateOrderCommand) DestinationOfficeID() kernel.UUID {
	return c.destinationOfficeID
}

// DestinationWardCode returns the ward the parcel is addressed to.
func (c CreateOrderCommand) DestinationWardCode() kernel.WardCode {
	return c.destinationWardCode
}

// ChargeableWeightKg returns the billed weight in kilograms.
func (c CreateOrderCommand) ChargeableWeightKg() float64 {
	return c.chargeableWeightKg
}

// Dimensions returns the optional parcel dimensions in centimeters.
func (c CreateOrderCommand) Dimensions() (length, width, height *float64) {
	return c.lengthCm, c.widthCm, c.heightCm
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateOrderCommand) setOriginOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.originOfficeID = id
	return nil
}

func (c *CreateOrderCommand) setDestinationOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.destinationOfficeID = id
	return nil
}

func (c *CreateOrderCommand) setDestinationWardCode(code kernel.WardCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.destinationWardCode = code
	return nil
}

func (c *CreateOrderCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.chargeableWeightKg = weightKg
	return nil
}

func (c *CreateOrderCommand) setDimensions(lengthCm, widthCm, heightCm *float64) error {
	provided := 0
	for _, d := range []*float64{lengthCm, widthCm, heightCm} {
		if d != nil {
			provided++
		}
	}
	if provided == 0 {
		return nil
	}
	if provided != 3 {
		return errs.NewValueIsInvalidError("dimensions must be supplied together")
	}
	for _, d := range []*float64{lengthCm, widthCm, heightCm} {
		if *d <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("dimensions",
				fmt.Errorf("%v is not greater than 0", *d))
		}
	}

	c.lengthCm = lengthCm
	c.widthCm = widthCm
	c.heightCm = heightCm
	return nil
}
