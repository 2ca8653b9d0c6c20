package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrDistributeBatchCommandIsNotConstructed = errors.New(
	"DistributeBatchCommand must be created via NewDistributeBatchCommand constructor",
)

// DistributeBatchCommand carries the batch to act on and the office requesting
// the action. The handler checks the office against the batch endpoint that
// owns this step of the lifecycle.
type DistributeBatchCommand struct { //nolint:recvcheck //using for validation
	batchID       kernel.UUID
	actorOfficeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDistributeBatchCommand creates the command.
func NewDistributeBatchCommand(batchID, actorOfficeID kernel.UUID) (DistributeBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return DistributeBatchCommand{}, err
	}
	if err := actorOfficeID.Validate(); err != nil {
		return DistributeBatchCommand{}, err
	}

	return DistributeBatchCommand{
		batchID:       batchID,
		actorOfficeID: actorOfficeID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DistributeBatchCommand) Validate() error {
	return c.guard.Validate(ErrDistributeBatchCommandIsNotConstructed)
}

// BatchID returns the batch to act on.
func (c DistributeBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ActorOfficeID returns the office requesting the action.
func (c DistributeBatchCommand) ActorOfficeID() kernel.UUID {
	return c.actorOfficeID
}
