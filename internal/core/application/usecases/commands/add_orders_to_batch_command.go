package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var (
	ErrAddOrdersToBatchCommandIsNotConstructed = errors.New(
		"AddOrdersToBatchCommand must be created via NewAddOrdersToBatchCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// AddOrdersToBatchCommand represents a request to put orders into an open batch.
type AddOrdersToBatchCommand struct { //nolint:recvcheck //using for validation
	batchID  kernel.UUID
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddOrdersToBatchCommand creates a command to add orders to a batch.
func NewAddOrdersToBatchCommand(batchID kernel.UUID, orderIDs []kernel.UUID) (AddOrdersToBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return AddOrdersToBatchCommand{}, err
	}
	if len(orderIDs) == 0 {
		return AddOrdersToBatchCommand{}, ErrOrderIDsAreRequired
	}
	for _, orderID := range orderIDs {
		if err := orderID.Validate(); err != nil {
			return AddOrdersToBatchCommand{}, err
		}
	}

	return AddOrdersToBatchCommand{
		batchID:  batchID,
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrdersToBatchCommand) Validate() error {
	return c.guard.Validate(ErrAddOrdersToBatchCommandIsNotConstructed)
}

// BatchID returns the target batch.
func (c AddOrdersToBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// OrderIDs returns the orders to add.
func (c AddOrdersToBatchCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
