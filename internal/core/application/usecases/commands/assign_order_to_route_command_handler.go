package commands

import (
	"context"
	"fmt"

	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

// AssignOrderToRouteCommandHandler handles placing orders on consolidation
// routes. The route must be active and must serve the ward of the order's
// origin office.
type AssignOrderToRouteCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewAssignOrderToRouteCommandHandler creates a handler for order assignment.
func NewAssignOrderToRouteCommandHandler(uowFactory ConsolidationUoWFactory) AssignOrderToRouteCommandHandler {
	return AssignOrderToRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h *AssignOrderToRouteCommandHandler) Handle(ctx context.Context, cmd AssignOrderToRouteCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	origin, err := uow.OfficeRepository().Get(ctx, aggregate.OriginOfficeID())
	if err != nil {
		return err
	}
	if origin.WardCode() == nil {
		return errs.NewValueIsInvalidErrorWithCause("originOfficeID",
			fmt.Errorf("office %s is not a ward-level office", origin.ID().String()))
	}

	route, err := h.resolveRoute(ctx, uow, cmd, *origin.WardCode(), origin.ProvinceCode())
	if err != nil {
		return err
	}

	if !route.IsActive() {
		return consolidation.ErrRouteIsInactive
	}
	if !route.ServesWard(*origin.WardCode()) {
		return errs.NewValueIsInvalidErrorWithCause("routeID",
			fmt.Errorf("route %s does not serve ward %s", route.ID().String(), origin.WardCode().String()))
	}

	if err = aggregate.AssignToConsolidationRoute(route.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AssignOrderToRouteCommandHandler) resolveRoute(
	ctx context.Context,
	uow ConsolidationUoW,
	cmd AssignOrderToRouteCommand,
	originWard kernel.WardCode,
	originProvince *kernel.ProvinceCode,
) (*consolidation.Route, error) {
	repo := uow.ConsolidationRouteRepository()

	if routeID := cmd.RouteID(); routeID != nil {
		return repo.Get(ctx, *routeID)
	}

	if originProvince == nil {
		return nil, errs.NewValueIsRequiredError("originProvinceCode")
	}

	routes, err := repo.GetAllActiveByProvince(ctx, *originProvince)
	if err != nil {
		return nil, err
	}
	for _, route := range routes {
		if route.ServesWard(originWard) {
			return route, nil
		}
	}

	return nil, errs.NewObjectNotFoundErrorWithCause("consolidationRoute", originWard.String(),
		fmt.Errorf("no active route serves ward %s", originWard.String()))
}

