package commands

import (
	"context"
	"fmt"

	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/office"
	"postal/internal/pkg/errs"
)

// CreateConsolidationRouteCommandHandler handles consolidation route creation.
// The destination must be an existing warehouse office in the route's province.
type CreateConsolidationRouteCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewCreateConsolidationRouteCommandHandler creates a handler for route creation.
func NewCreateConsolidationRouteCommandHandler(uowFactory ConsolidationUoWFactory) CreateConsolidationRouteCommandHandler {
	return CreateConsolidationRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route creation command.
func (h *CreateConsolidationRouteCommandHandler) Handle(ctx context.Context, cmd CreateConsolidationRouteCommand) error {
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

	warehouse, err := uow.OfficeRepository().Get(ctx, cmd.DestinationWarehouseID())
	if err != nil {
		return err
	}
	if warehouse.Type() != office.ProvinceWarehouse {
		return errs.NewValueIsInvalidErrorWithCause("destinationWarehouseID",
			fmt.Errorf("office %s is not a province warehouse", warehouse.ID().String()))
	}
	if warehouse.ProvinceCode() == nil || !warehouse.ProvinceCode().IsEqual(cmd.ProvinceCode()) {
		return errs.NewValueIsInvalidErrorWithCause("destinationWarehouseID",
			fmt.Errorf("warehouse %s is outside province %s", warehouse.ID().String(), cmd.ProvinceCode().String()))
	}

	maxWeightKg, maxVolumeCm3, maxOrders := cmd.Capacity()
	aggregate, err := consolidation.NewRoute(
		cmd.RouteID(),
		cmd.Name(),
		cmd.ProvinceCode(),
		cmd.DestinationWarehouseID(),
		cmd.WardCodes(),
		maxWeightKg, maxVolumeCm3, maxOrders,
	)
	if err != nil {
		return err
	}

	if err = uow.ConsolidationRouteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
