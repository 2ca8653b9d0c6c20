package commands

import (
	"context"
	"time"

	"postal/internal/core/domain/model/batch"
)

// CreateBatchCommandHandler handles opening consignment batches. Both
// endpoint offices must exist.
type CreateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCreateBatchCommandHandler creates a handler for batch creation.
func NewCreateBatchCommandHandler(uowFactory BatchUoWFactory) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch creation command.
func (h *CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
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

	maxWeightKg, maxVolumeCm3, maxOrders := cmd.Capacity()
	aggregate, err := batch.NewBatch(
		cmd.BatchID(),
		cmd.OriginOfficeID(),
		cmd.DestinationOfficeID(),
		maxWeightKg, maxVolumeCm3, maxOrders,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.BatchRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
