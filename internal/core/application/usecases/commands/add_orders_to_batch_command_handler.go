package commands

import (
	"context"
	"fmt"

	"postal/internal/pkg/errs"
)

// AddOrdersToBatchCommandHandler handles manual placement of orders into a
// batch. Every order must sit at the batch origin, share the batch
// destination, and fit within the batch capacity.
type AddOrdersToBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewAddOrdersToBatchCommandHandler creates a handler for manual batching.
func NewAddOrdersToBatchCommandHandler(uowFactory BatchUoWFactory) AddOrdersToBatchCommandHandler {
	return AddOrdersToBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add command. All orders are added or none.
func (h *AddOrdersToBatchCommandHandler) Handle(ctx context.Context, cmd AddOrdersToBatchCommand) error {
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

	orderRepo := uow.OrderRepository()
	for _, orderID := range cmd.OrderIDs() {
		o, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		if !o.CurrentOfficeID().IsEqual(aggregate.OriginOfficeID()) {
			return errs.NewValueIsInvalidErrorWithCause("orderID",
				fmt.Errorf("order %s is not at batch origin %s",
					o.ID().String(), aggregate.OriginOfficeID().String()))
		}
		if !o.DestinationOfficeID().IsEqual(aggregate.DestinationOfficeID()) {
			return errs.NewValueIsInvalidErrorWithCause("orderID",
				fmt.Errorf("order %s is not bound for batch destination %s",
					o.ID().String(), aggregate.DestinationOfficeID().String()))
		}

		if err = aggregate.AddOrder(o.ID(), o.ChargeableWeightKg(), o.VolumeCm3()); err != nil {
			return err
		}
		if err = o.AssignToBatch(aggregate.ID()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.BatchRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
