package commands

import (
	"context"
	"fmt"
	"time"

	"postal/internal/pkg/errs"
)

// SealBatchCommandHandler handles closing a batch for departure. Only the
// origin office may seal, and sealing marks every contained order as sorted.
type SealBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewSealBatchCommandHandler creates a handler for batch sealing.
func NewSealBatchCommandHandler(uowFactory BatchUoWFactory) SealBatchCommandHandler {
	return SealBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the seal command.
func (h *SealBatchCommandHandler) Handle(ctx context.Context, cmd SealBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.BatchRepository().Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}
	if !aggregate.OriginOfficeID().IsEqual(cmd.ActorOfficeID()) {
		return errs.NewOperationForbiddenErrorWithCause("seal batch",
			fmt.Errorf("office %s is not the batch origin", cmd.ActorOfficeID().String()))
	}

	if err = aggregate.Seal(time.Now()); err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllByBatch(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.MarkSortedAtOrigin(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.BatchRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
