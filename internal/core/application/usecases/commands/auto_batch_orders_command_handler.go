package commands

import (
	"context"
	"time"

	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/services"
)

// AutoBatchOrdersCommandHandler runs the first-fit-decreasing packer over
// the orders waiting at an office: existing open batches between the office
// pair are filled first, new batches are opened as needed.
type AutoBatchOrdersCommandHandler struct {
	uowFactory BatchUoWFactory
	packer     services.BatchPacker
}

// NewAutoBatchOrdersCommandHandler creates a handler for automatic batching.
func NewAutoBatchOrdersCommandHandler(
	uowFactory BatchUoWFactory,
	packer services.BatchPacker,
) AutoBatchOrdersCommandHandler {
	return AutoBatchOrdersCommandHandler{
		uowFactory: uowFactory,
		packer:     packer,
	}
}

// Handle processes the automatic batching command and reports what was packed.
func (h *AutoBatchOrdersCommandHandler) Handle(
	ctx context.Context, cmd AutoBatchOrdersCommand,
) (AutoBatchOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutoBatchOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AutoBatchOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllBatchableAtOffice(ctx, cmd.OfficeID(), cmd.DestinationOfficeID())
	if err != nil {
		return AutoBatchOrdersResult{}, err
	}
	if len(orders) == 0 {
		return AutoBatchOrdersResult{}, uow.Commit(ctx)
	}

	batches, err := uow.BatchRepository().GetAllModifiableByOfficePair(ctx, cmd.OfficeID(), cmd.DestinationOfficeID())
	if err != nil {
		return AutoBatchOrdersResult{}, err
	}

	maxWeightKg, maxVolumeCm3, maxOrders := cmd.Capacity()
	factory := func() (*batch.Batch, error) {
		return batch.NewBatch(
			kernel.NewUUID(),
			cmd.OfficeID(),
			cmd.DestinationOfficeID(),
			maxWeightKg, maxVolumeCm3, maxOrders,
			time.Now(),
		)
	}

	packed, err := h.packer.Pack(orders, batches, factory)
	if err != nil {
		return AutoBatchOrdersResult{}, err
	}

	for _, b := range packed.CreatedBatches {
		if err = uow.BatchRepository().Add(ctx, b); err != nil {
			return AutoBatchOrdersResult{}, err
		}
	}
	for _, b := range batches {
		if err = uow.BatchRepository().Update(ctx, b); err != nil {
			return AutoBatchOrdersResult{}, err
		}
	}
	for _, o := range orders {
		if !o.IsBatched() {
			continue
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return AutoBatchOrdersResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AutoBatchOrdersResult{}, err
	}

	return AutoBatchOrdersResult{
		PackedCount:    packed.PackedCount,
		CreatedBatches: len(packed.CreatedBatches),
		Skipped:        packed.Skipped,
	}, nil
}
