package commands

import (
	"context"
	"strconv"
	"time"

	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
	"postal/internal/core/ports"
)

// ConsolidateReadyRoutesCommandHandler sweeps the active consolidation
// routes and runs every route whose readiness rule fires: enough pending
// orders by count or weight, or pending orders old enough. Each route is
// consolidated in its own transaction so one failure cannot roll back the
// routes already done.
type ConsolidateReadyRoutesCommandHandler struct {
	uowFactory ConsolidationUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewConsolidateReadyRoutesCommandHandler creates a handler for the sweep.
func NewConsolidateReadyRoutesCommandHandler(
	uowFactory ConsolidationUoWFactory,
	notifier ports.NotificationDispatcher,
) ConsolidateReadyRoutesCommandHandler {
	return ConsolidateReadyRoutesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the sweep command and reports what it consolidated.
// Per-route failures land in the result, not in the returned error.
func (h *ConsolidateReadyRoutesCommandHandler) Handle(
	ctx context.Context, cmd ConsolidateReadyRoutesCommand,
) (ConsolidateReadyRoutesResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConsolidateReadyRoutesResult{}, err
	}

	routes, err := h.listActiveRoutes(ctx, cmd.ProvinceCode())
	if err != nil {
		return ConsolidateReadyRoutesResult{}, err
	}

	var result ConsolidateReadyRoutesResult
	now := time.Now()

	for _, route := range routes {
		result.RoutesChecked++

		moved, routeErr := h.consolidateRoute(ctx, route.ID(), now)
		if routeErr != nil {
			result.Failures = append(result.Failures, ConsolidationFailure{
				RouteID: route.ID(),
				Err:     routeErr,
			})
			continue
		}
		if moved == 0 {
			continue
		}

		result.RoutesConsolidated++
		result.OrdersConsolidated += moved

		h.notifier.Dispatch(ctx, ports.NotificationEvent{
			Name:       ports.EventConsolidationCompleted,
			OccurredAt: now,
			Attributes: map[string]string{
				"routeId":    route.ID().String(),
				"orderCount": strconv.Itoa(moved),
			},
		})
	}

	return result, nil
}

func (h *ConsolidateReadyRoutesCommandHandler) listActiveRoutes(
	ctx context.Context, provinceCode *kernel.ProvinceCode,
) ([]*consolidation.Route, error) {
	uow := h.uowFactory.Create()

	if provinceCode != nil {
		return uow.ConsolidationRouteRepository().GetAllActiveByProvince(ctx, *provinceCode)
	}
	return uow.ConsolidationRouteRepository().GetAllActive(ctx)
}

// consolidateRoute runs one route in its own transaction. Returns the number
// of orders moved, zero when the route is not ready yet.
func (h *ConsolidateReadyRoutesCommandHandler) consolidateRoute(
	ctx context.Context, routeID kernel.UUID, now time.Time,
) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	route, err := uow.ConsolidationRouteRepository().Get(ctx, routeID)
	if err != nil {
		return 0, err
	}

	pending, err := uow.OrderRepository().GetAllPendingByConsolidationRoute(ctx, route.ID())
	if err != nil {
		return 0, err
	}

	if !route.ReadyForConsolidation(len(pending), totalWeight(pending), oldestAcceptedAt(pending), now) {
		return 0, nil
	}

	for _, o := range pending {
		if err = o.Consolidate(route.DestinationWarehouseID(), now); err != nil {
			return 0, err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = route.RecordConsolidation(len(pending), now); err != nil {
		return 0, err
	}
	if err = uow.ConsolidationRouteRepository().Update(ctx, route); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(pending), nil
}

func totalWeight(orders []*order.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.ChargeableWeightKg()
	}
	return sum
}

// oldestAcceptedAt returns the acceptance time of the oldest pending order,
// nil when nothing is pending.
func oldestAcceptedAt(orders []*order.Order) *time.Time {
	var oldest *time.Time
	for _, o := range orders {
		at := o.CreatedAt()
		if oldest == nil || at.Before(*oldest) {
			oldest = &at
		}
	}
	return oldest
}
