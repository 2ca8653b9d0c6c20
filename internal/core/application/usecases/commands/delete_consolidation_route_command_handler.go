package commands

import (
	"context"
	"fmt"

	"postal/internal/pkg/errs"
)

// DeleteConsolidationRouteCommandHandler handles consolidation route removal.
// A route with orders still waiting for consolidation cannot be deleted.
type DeleteConsolidationRouteCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewDeleteConsolidationRouteCommandHandler creates a handler for route removal.
func NewDeleteConsolidationRouteCommandHandler(uowFactory ConsolidationUoWFactory) DeleteConsolidationRouteCommandHandler {
	return DeleteConsolidationRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route deletion command.
func (h *DeleteConsolidationRouteCommandHandler) Handle(ctx context.Context, cmd DeleteConsolidationRouteCommand) error {
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

	repo := uow.ConsolidationRouteRepository()
	route, err := repo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	pending, err := uow.OrderRepository().GetAllPendingByConsolidationRoute(ctx, route.ID())
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		return errs.NewOperationForbiddenErrorWithCause("delete consolidation route",
			fmt.Errorf("route %s still has %d pending orders", route.ID().String(), len(pending)))
	}

	if err = repo.Delete(ctx, route.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
