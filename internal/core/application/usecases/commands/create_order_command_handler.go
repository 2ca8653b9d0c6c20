package commands

import (
	"context"

	"postal/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for parcel registration.
// Validates that both endpoint offices exist before creating the order in
// Created status at its origin.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for parcel registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	officeRepo := uow.OfficeRepository()
	if _, err := officeRepo.Get(ctx, cmd.OriginOfficeID()); err != nil {
		return err
	}
	if _, err := officeRepo.Get(ctx, cmd.DestinationOfficeID()); err != nil {
		return err
	}

	length, width, height := cmd.Dimensions()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.TrackingNumber(),
		cmd.OriginOfficeID(),
		cmd.DestinationOfficeID(),
		cmd.DestinationWardCode(),
		cmd.ChargeableWeightKg(),
		length, width, height,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
