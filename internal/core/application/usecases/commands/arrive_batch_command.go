package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrArriveBatchCommandIsNotConstructed = errors.New(
	"ArriveBatchCommand must be created via NewArriveBatchCommand constructor",
)

// ArriveBatchCommand carries the batch to act on and the office requesting
// the action. The handler checks the office against the batch endpoint that
// owns this step of the lifecycle.
type ArriveBatchCommand struct { //nolint:recvcheck //using for validation
	batchID       kernel.UUID
	actorOfficeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArriveBatchCommand creates the command.
func NewArriveBatchCommand(batchID, actorOfficeID kernel.UUID) (ArriveBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return ArriveBatchCommand{}, err
	}
	if err := actorOfficeID.Validate(); err != nil {
		return ArriveBatchCommand{}, err
	}

	return ArriveBatchCommand{
		batchID:       batchID,
		actorOfficeID: actorOfficeID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArriveBatchCommand) Validate() error {
	return c.guard.Validate(ErrArriveBatchCommandIsNotConstructed)
}

// BatchID returns the batch to act on.
func (c ArriveBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ActorOfficeID returns the office requesting the action.
func (c ArriveBatchCommand) ActorOfficeID() kernel.UUID {
	return c.actorOfficeID
}
