package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"postal/internal/core/ports"
	"postal/internal/pkg/errs"
)

// DepartBatchCommandHandler handles sending a sealed batch on its way. The
// contained orders move to in-transit and interested parties are notified.
type DepartBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewDepartBatchCommandHandler creates a handler for batch departure.
func NewDepartBatchCommandHandler(
	uowFactory BatchUoWFactory,
	notifier ports.NotificationDispatcher,
) DepartBatchCommandHandler {
	return DepartBatchCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the departure command.
func (h *DepartBatchCommandHandler) Handle(ctx context.Context, cmd DepartBatchCommand) error {
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
		return errs.NewOperationForbiddenErrorWithCause("depart batch",
			fmt.Errorf("office %s is not the batch origin", cmd.ActorOfficeID().String()))
	}

	now := time.Now()
	if err = aggregate.Depart(now); err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllByBatch(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.DepartToHub(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.BatchRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, ports.NotificationEvent{
		Name:       ports.EventBatchDeparted,
		OccurredAt: now,
		Attributes: map[string]string{
			"batchId":             aggregate.ID().String(),
			"batchCode":           aggregate.BatchCode(),
			"destinationOfficeId": aggregate.DestinationOfficeID().String(),
			"orderCount":          strconv.Itoa(aggregate.OrderCount()),
		},
	})

	return nil
}
