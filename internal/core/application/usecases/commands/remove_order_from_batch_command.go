package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrRemoveOrderFromBatchCommandIsNotConstructed = errors.New(
	"RemoveOrderFromBatchCommand must be created via NewRemoveOrderFromBatchCommand constructor",
)

// RemoveOrderFromBatchCommand represents a request to take an order out of
// a batch that is still open for modification.
type RemoveOrderFromBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderFromBatchCommand creates a command to remove an order from a batch.
func NewRemoveOrderFromBatchCommand(batchID, orderID kernel.UUID) (RemoveOrderFromBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return RemoveOrderFromBatchCommand{}, err
	}
	if err := orderID.Validate(); err != nil {
		return RemoveOrderFromBatchCommand{}, err
	}

	return RemoveOrderFromBatchCommand{
		batchID: batchID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderFromBatchCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderFromBatchCommandIsNotConstructed)
}

// BatchID returns the batch to remove from.
func (c RemoveOrderFromBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// OrderID returns the order to remove.
func (c RemoveOrderFromBatchCommand) OrderID() kernel.UUID {
	return c.orderID
}
