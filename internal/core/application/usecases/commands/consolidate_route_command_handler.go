package commands

import (
	"context"
	"strconv"
	"time"

	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/ports"
)

// ConsolidateRouteCommandHandler executes a consolidation run: every pending
// order on the route is relocated to the route's province warehouse and
// stamped with the consolidation time.
type ConsolidateRouteCommandHandler struct {
	uowFactory ConsolidationUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewConsolidateRouteCommandHandler creates a handler for consolidation runs.
func NewConsolidateRouteCommandHandler(
	uowFactory ConsolidationUoWFactory,
	notifier ports.NotificationDispatcher,
) ConsolidateRouteCommandHandler {
	return ConsolidateRouteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the consolidation command. A run with no pending orders
// is a no-op and does not touch the route's consolidation history.
func (h *ConsolidateRouteCommandHandler) Handle(ctx context.Context, cmd ConsolidateRouteCommand) error {
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

	routeRepo := uow.ConsolidationRouteRepository()
	route, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	if !route.IsActive() {
		return consolidation.ErrRouteIsInactive
	}

	orderRepo := uow.OrderRepository()
	pending, err := orderRepo.GetAllPendingByConsolidationRoute(ctx, route.ID())
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return consolidation.ErrNoPendingOrders
	}

	now := time.Now()
	for _, o := range pending {
		if err = o.Consolidate(route.DestinationWarehouseID(), now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = route.RecordConsolidation(len(pending), now); err != nil {
		return err
	}
	if err = routeRepo.Update(ctx, route); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, ports.NotificationEvent{
		Name:       ports.EventConsolidationCompleted,
		OccurredAt: now,
		Attributes: map[string]string{
			"routeId":     route.ID().String(),
			"routeName":   route.Name(),
			"warehouseId": route.DestinationWarehouseID().String(),
			"orderCount":  strconv.Itoa(len(pending)),
		},
	})

	return nil
}
