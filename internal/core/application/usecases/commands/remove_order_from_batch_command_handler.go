package commands

import "context"

// RemoveOrderFromBatchCommandHandler handles taking an order back out of an
// open batch.
type RemoveOrderFromBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewRemoveOrderFromBatchCommandHandler creates a handler for batch removal.
func NewRemoveOrderFromBatchCommandHandler(uowFactory BatchUoWFactory) RemoveOrderFromBatchCommandHandler {
	return RemoveOrderFromBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveOrderFromBatchCommandHandler) Handle(ctx context.Context, cmd RemoveOrderFromBatchCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveOrder(o.ID()); err != nil {
		return err
	}
	if err = o.RemoveFromBatch(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err = uow.BatchRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
