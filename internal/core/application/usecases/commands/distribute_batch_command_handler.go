package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"postal/internal/core/ports"
	"postal/internal/pkg/errs"
)

// DistributeBatchCommandHandler handles breaking an arrived batch up for
// final delivery: the orders detach from the batch and go out for delivery.
type DistributeBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewDistributeBatchCommandHandler creates a handler for batch distribution.
func NewDistributeBatchCommandHandler(
	uowFactory BatchUoWFactory,
	notifier ports.NotificationDispatcher,
) DistributeBatchCommandHandler {
	return DistributeBatchCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the distribution command.
func (h *DistributeBatchCommandHandler) Handle(ctx context.Context, cmd DistributeBatchCommand) error {
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
		return errs.NewOperationForbiddenErrorWithCause("distribute batch",
			fmt.Errorf("office %s is not the batch destination", cmd.ActorOfficeID().String()))
	}

	orderCount := aggregate.OrderCount()
	if err = aggregate.Distribute(); err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllByBatch(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.StartDelivery(); err != nil {
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
		Name:       ports.EventBatchDistributed,
		OccurredAt: time.Now(),
		Attributes: map[string]string{
			"batchId":    aggregate.ID().String(),
			"batchCode":  aggregate.BatchCode(),
			"officeId":   aggregate.DestinationOfficeID().String(),
			"orderCount": strconv.Itoa(orderCount),
		},
	})

	return nil
}
