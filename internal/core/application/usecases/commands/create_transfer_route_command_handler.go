package commands

import (
	"context"
	"errors"
	"fmt"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/pkg/errs"
)

// CreateTransferRouteCommandHandler handles hub connections. Both endpoints
// must be existing hub offices, the pair must not be connected yet, and the
// reverse direction is created alongside the requested one.
type CreateTransferRouteCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewCreateTransferRouteCommandHandler creates a handler for hub connections.
func NewCreateTransferRouteCommandHandler(uowFactory TransferUoWFactory) CreateTransferRouteCommandHandler {
	return CreateTransferRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the connection command.
func (h *CreateTransferRouteCommandHandler) Handle(ctx context.Context, cmd CreateTransferRouteCommand) error {
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

	if err := h.checkHub(ctx, uow, cmd.FromHubID()); err != nil {
		return err
	}
	if err := h.checkHub(ctx, uow, cmd.ToHubID()); err != nil {
		return err
	}

	routeRepo := uow.TransferRouteRepository()
	if _, err := routeRepo.GetByHubPair(ctx, cmd.FromHubID(), cmd.ToHubID()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("fromHubID",
			fmt.Errorf("hubs %s and %s are already connected",
				cmd.FromHubID().String(), cmd.ToHubID().String()))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	forward, err := transfer.NewRoute(cmd.RouteID(), cmd.FromHubID(), cmd.ToHubID(),
		cmd.DistanceKm(), cmd.TransitHours(), cmd.Priority())
	if err != nil {
		return err
	}
	reverse, err := transfer.NewRoute(kernel.NewUUID(), cmd.ToHubID(), cmd.FromHubID(),
		cmd.DistanceKm(), cmd.TransitHours(), cmd.Priority())
	if err != nil {
		return err
	}

	if err = routeRepo.Add(ctx, forward); err != nil {
		return err
	}
	if err = routeRepo.Add(ctx, reverse); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateTransferRouteCommandHandler) checkHub(ctx context.Context, uow TransferUoW, hubID kernel.UUID) error {
	hub, err := uow.OfficeRepository().Get(ctx, hubID)
	if err != nil {
		return err
	}
	if !hub.IsHub() {
		return errs.NewValueIsInvalidErrorWithCause("hubID",
			fmt.Errorf("office %s is not a regional hub", hubID.String()))
	}
	return nil
}
