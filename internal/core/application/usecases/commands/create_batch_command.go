package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var ErrCreateBatchCommandIsNotConstructed = errors.New(
	"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
)

// CreateBatchCommand represents a request to open a new consignment batch
// between two offices.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID             kernel.UUID
	originOfficeID      kernel.UUID
	destinationOfficeID kernel.UUID
	maxWeightKg         float64
	maxVolumeCm3        *float64
	maxOrders           *int

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to open a batch. Volume capacity
// is optional, weight and order count capacities are not.
func NewCreateBatchCommand(
	batchID kernel.UUID,
	originOfficeID kernel.UUID,
	destinationOfficeID kernel.UUID,
	maxWeightKg float64,
	maxVolumeCm3 *float64,
	maxOrders *int,
) (CreateBatchCommand, error) {
	batchCommand := CreateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batchCommand.setBatchID(batchID),
		batchCommand.setOffices(originOfficeID, destinationOfficeID),
		batchCommand.setCapacity(maxWeightKg, maxVolumeCm3, maxOrders),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the unique identifier for the batch.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// OriginOfficeID returns the office assembling the batch.
func (c CreateBatchCommand) OriginOfficeID() kernel.UUID {
	return c.originOfficeID
}

// DestinationOfficeID returns the office the batch is bound for.
func (c CreateBatchCommand) DestinationOfficeID() kernel.UUID {
	return c.destinationOfficeID
}

// Capacity returns the batch capacity limits.
func (c CreateBatchCommand) Capacity() (maxWeightKg float64, maxVolumeCm3 *float64, maxOrders *int) {
	return c.maxWeightKg, c.maxVolumeCm3, c.maxOrders
}

func (c *CreateBatchCommand) setBatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.batchID = id
	return nil
}

func (c *CreateBatchCommand) setOffices(originOfficeID, destinationOfficeID kernel.UUID) error {
	if err := originOfficeID.Validate(); err != nil {
		return err
	}
	if err := destinationOfficeID.Validate(); err != nil {
		return err
	}

	c.originOfficeID = originOfficeID
	c.destinationOfficeID = destinationOfficeID
	return nil
}

func (c *CreateBatchCommand) setCapacity(maxWeightKg float64, maxVolumeCm3 *float64, maxOrders *int) error {
	if maxWeightKg <= 0 {
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
