package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"postal/internal/core/ports"
	"postal/internal/pkg/errs"
)

// ArriveBatchCommandHandler handles receiving a batch at its destination.
// Only the destination office may confirm arrival; every contained order is
// relocated there.
type ArriveBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewArriveBatchCommandHandler creates a handler for batch arrival.
func NewArriveBatchCommandHandler(
	uowFactory BatchUoWFactory,
	notifier ports.NotificationDispatcher,
) ArriveBatchCommandHandler {
	return ArriveBatchCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the arrival command.
func (h *ArriveBatchCommandHandler) Handle(ctx context.Context, cmd ArriveBatchCommand) error {
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
	if !aggregate.DestinationOfficeID().IsEqual(cmd.ActorOfficeID()) {
		return errs.NewOperationForbiddenErrorWithCause("arrive batch",
			fmt.Errorf("office %s is not the batch destination", cmd.ActorOfficeID().String()))
	}

	now := time.Now()
	if err = aggregate.Arrive(now); err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllByBatch(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.ArriveAtDestination(aggregate.DestinationOfficeID()); err != nil {
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
		Name:       ports.EventBatchArrived,
		OccurredAt: now,
		Attributes: map[string]string{
			"batchId":    aggregate.ID().String(),
			"batchCode":  aggregate.BatchCode(),
			"officeId":   aggregate.DestinationOfficeID().String(),
			"orderCount": strconv.Itoa(aggregate.OrderCount()),
		},
	})

	return nil
}
