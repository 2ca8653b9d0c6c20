package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrSealBatchCommandIsNotConstructed = errors.New(
	"SealBatchCommand must be created via NewSealBatchCommand constructor",
)

// SealBatchCommand carries the batch to act on and the office requesting
// the action. The handler checks the office against the batch endpoint that
// owns this step of the lifecycle.
type SealBatchCommand struct { //nolint:recvcheck //using for validation
	batchID       kernel.UUID
	actorOfficeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSealBatchCommand creates the command.
func NewSealBatchCommand(batchID, actorOfficeID kernel.UUID) (SealBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return SealBatchCommand{}, err
	}
	if err := actorOfficeID.Validate(); err != nil {
		return SealBatchCommand{}, err
	}

	return SealBatchCommand{
		batchID:       batchID,
		actorOfficeID: actorOfficeID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SealBatchCommand) Validate() error {
	return c.guard.Validate(ErrSealBatchCommandIsNotConstructed)
}

// BatchID returns the batch to act on.
func (c SealBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ActorOfficeID returns the office requesting the action.
func (c SealBatchCommand) ActorOfficeID() kernel.UUID {
	return c.actorOfficeID
}
