package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrCancelBatchCommandIsNotConstructed = errors.New(
	"CancelBatchCommand must be created via NewCancelBatchCommand constructor",
)

// CancelBatchCommand carries the batch to act on and the office requesting
// the action. The handler checks the office against the batch endpoint that
// owns this step of the lifecycle.
type CancelBatchCommand struct { //nolint:recvcheck //using for validation
	batchID       kernel.UUID
	actorOfficeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelBatchCommand creates the command.
func NewCancelBatchCommand(batchID, actorOfficeID kernel.UUID) (CancelBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return CancelBatchCommand{}, err
	}
	if err := actorOfficeID.Validate(); err != nil {
		return CancelBatchCommand{}, err
	}

	return CancelBatchCommand{
		batchID:       batchID,
		actorOfficeID: actorOfficeID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBatchCommand) Validate() error {
	return c.guard.Validate(ErrCancelBatchCommandIsNotConstructed)
}

// BatchID returns the batch to act on.
func (c CancelBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ActorOfficeID returns the office requesting the action.
func (c CancelBatchCommand) ActorOfficeID() kernel.UUID {
	return c.actorOfficeID
}
