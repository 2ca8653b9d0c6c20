package commands

import (
	"context"
	"strconv"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/core/ports"
)

// DisableRouteCommandHandler takes a transfer route out of service. The
// outstanding batches moving between the two hub regions are counted into
// the disruption record so operators can see the blast radius.
type DisableRouteCommandHandler struct {
	uowFactory TransferUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewDisableRouteCommandHandler creates a handler for route disabling.
func NewDisableRouteCommandHandler(
	uowFactory TransferUoWFactory,
	notifier ports.NotificationDispatcher,
) DisableRouteCommandHandler {
	return DisableRouteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the disable command. Disabling an already disabled route
// is rejected by the aggregate.
func (h *DisableRouteCommandHandler) Handle(ctx context.Context, cmd DisableRouteCommand) error {
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

	route, err := uow.TransferRouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	if err = route.Disable(); err != nil {
		return err
	}

	batchCount, orderCount, err := h.snapshotTraffic(ctx, uow, route)
	if err != nil {
		return err
	}

	now := time.Now()
	disruption, err := transfer.NewDisruption(
		kernel.NewUUID(),
		route.ID(),
		cmd.DisruptionType(),
		cmd.Reason(),
		now,
		cmd.ExpectedEndTime(),
		batchCount,
		orderCount,
	)
	if err != nil {
		return err
	}

	if err = uow.DisruptionRepository().Add(ctx, disruption); err != nil {
		return err
	}
	if err = uow.TransferRouteRepository().Update(ctx, route); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, ports.NotificationEvent{
		Name:       ports.EventRouteDisrupted,
		OccurredAt: now,
		Attributes: map[string]string{
			"routeId":        route.ID().String(),
			"disruptionId":   disruption.ID().String(),
			"disruptionType": disruption.Type().String(),
			"reason":         disruption.Reason(),
			"batchCount":     strconv.Itoa(batchCount),
			"orderCount":     strconv.Itoa(orderCount),
		},
	})

	return nil
}

// snapshotTraffic counts the sealed and in-transit batches moving from the
// route's origin region to its destination region at the moment of the
// disruption, plus the orders inside them.
func (h *DisableRouteCommandHandler) snapshotTraffic(
	ctx context.Context, uow TransferUoW, route *transfer.Route,
) (batchCount, orderCount int, err error) {
	fromHub, err := uow.OfficeRepository().Get(ctx, route.FromHubID())
	if err != nil {
		return 0, 0, err
	}
	toHub, err := uow.OfficeRepository().Get(ctx, route.ToHubID())
	if err != nil {
		return 0, 0, err
	}

	batches, err := uow.BatchRepository().GetAllOutstandingBetweenRegions(ctx, fromHub.RegionID(), toHub.RegionID())
	if err != nil {
		return 0, 0, err
	}

	for _, b := range batches {
		batchCount++
		orderCount += b.OrderCount()
	}
	return batchCount, orderCount, nil
}
