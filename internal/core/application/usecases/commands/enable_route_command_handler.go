package commands

import (
	"context"
	"errors"
	"time"

	"postal/internal/core/ports"
	"postal/internal/pkg/errs"
)

// EnableRouteCommandHandler puts a transfer route back in service, closing
// the active disruption on it when one exists.
type EnableRouteCommandHandler struct {
	uowFactory TransferUoWFactory
	notifier   ports.NotificationDispatcher
}

// NewEnableRouteCommandHandler creates a handler for route enabling.
func NewEnableRouteCommandHandler(
	uowFactory TransferUoWFactory,
	notifier ports.NotificationDispatcher,
) EnableRouteCommandHandler {
	return EnableRouteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the enable command.
func (h *EnableRouteCommandHandler) Handle(ctx context.Context, cmd EnableRouteCommand) error {
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
	if err = route.Enable(); err != nil {
		return err
	}

	now := time.Now()
	attributes := map[string]string{
		"routeId": route.ID().String(),
	}

	disruption, err := uow.DisruptionRepository().GetActiveByRoute(ctx, route.ID())
	switch {
	case err == nil:
		if err = disruption.Close(now); err != nil {
			return err
		}
		if err = uow.DisruptionRepository().Update(ctx, disruption); err != nil {
			return err
		}
		attributes["disruptionId"] = disruption.ID().String()
	case errors.Is(err, errs.ErrObjectNotFound):
		// Route was disabled without a disruption record, nothing to close.
	default:
		return err
	}

	if err = uow.TransferRouteRepository().Update(ctx, route); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, ports.NotificationEvent{
		Name:       ports.EventRouteRestored,
		OccurredAt: now,
		Attributes: attributes,
	})

	return nil
}
