package commands

import "context"

// UpdateConsolidationRouteCommandHandler handles consolidation route updates.
type UpdateConsolidationRouteCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewUpdateConsolidationRouteCommandHandler creates a handler for route updates.
func NewUpdateConsolidationRouteCommandHandler(uowFactory ConsolidationUoWFactory) UpdateConsolidationRouteCommandHandler {
	return UpdateConsolidationRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route update command, applying only the fields the
// command carries.
func (h *UpdateConsolidationRouteCommandHandler) Handle(ctx context.Context, cmd UpdateConsolidationRouteCommand) error {
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

	if name := cmd.Name(); name != nil {
		if err = route.Rename(*name); err != nil {
			return err
		}
	}
	if wardCodes := cmd.WardCodes(); len(wardCodes) > 0 {
		if err = route.UpdateStops(wardCodes); err != nil {
			return err
		}
	}
	if cmd.UpdateCapacity() {
		maxWeightKg, maxVolumeCm3, maxOrders := cmd.Capacity()
		if err = route.UpdateCapacity(maxWeightKg, maxVolumeCm3, maxOrders); err != nil {
			return err
		}
	}
	if isActive := cmd.IsActive(); isActive != nil {
		if *isActive {
			route.Activate()
		} else {
			route.Deactivate()
		}
	}

	if err = repo.Update(ctx, route); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
