package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrDepartBatchCommandIsNotConstructed = errors.New(
	"DepartBatchCommand must be created via NewDepartBatchCommand constructor",
)

// DepartBatchCommand carries the batch to act on and the office requesting
// the action. The handler checks the office against the batch endpoint that
// owns this step of the lifecycle.
type DepartBatchCommand struct { //nolint:recvcheck //using for validation
	batchID       kernel.UUID
	actorOfficeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDepartBatchCommand creates the command.
func NewDepartBatchCommand(batchID, actorOfficeID kernel.UUID) (DepartBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return DepartBatchCommand{}, err
	}
	if err := actorOfficeID.Validate(); err != nil {
		return DepartBatchCommand{}, err
	}

	return DepartBatchCommand{
		batchID:       batchID,
		actorOfficeID: actorOfficeID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DepartBatchCommand) Validate() error {
	return c.guard.Validate(ErrDepartBatchCommandIsNotConstructed)
}

// BatchID returns the batch to act on.
func (c DepartBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ActorOfficeID returns the office requesting the action.
func (c DepartBatchCommand) ActorOfficeID() kernel.UUID {
	return c.actorOfficeID
}
