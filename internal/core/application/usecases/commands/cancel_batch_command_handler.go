package commands

import (
	"context"
	"fmt"

	"postal/internal/pkg/errs"
)

// CancelBatchCommandHandler handles aborting a batch before departure. The
// contained orders are released back to the origin office for rebatching.
type CancelBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCancelBatchCommandHandler creates a handler for batch cancellation.
func NewCancelBatchCommandHandler(uowFactory BatchUoWFactory) CancelBatchCommandHandler {
	return CancelBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelBatchCommandHandler) Handle(ctx context.Context, cmd CancelBatchCommand) error {
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
		return errs.NewOperationForbiddenErrorWithCause("cancel batch",
			fmt.Errorf("office %s is not the batch origin", cmd.ActorOfficeID().String()))
	}

	orders, err := uow.OrderRepository().GetAllByBatch(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.ReleaseFromBatch(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}
	if err = uow.BatchRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
