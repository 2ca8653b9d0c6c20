package commands

import (
	"context"
	"time"
)

// SealReadyBatchesCommandHandler sweeps the open batches and seals the ones
// older than the age limit that hold enough orders, marking the contained
// orders as sorted.
type SealReadyBatchesCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewSealReadyBatchesCommandHandler creates a handler for the sealing sweep.
func NewSealReadyBatchesCommandHandler(uowFactory BatchUoWFactory) SealReadyBatchesCommandHandler {
	return SealReadyBatchesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and reports what it sealed.
func (h *SealReadyBatchesCommandHandler) Handle(
	ctx context.Context, cmd SealReadyBatchesCommand,
) (SealReadyBatchesResult, error) {
	if err := cmd.Validate(); err != nil {
		return SealReadyBatchesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SealReadyBatchesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	batches, err := uow.BatchRepository().GetAllSealableOlderThan(ctx, now.Add(-cmd.MaxAge()), cmd.MinOrders())
	if err != nil {
		return SealReadyBatchesResult{}, err
	}

	var result SealReadyBatchesResult
	for _, b := range batches {
		if err = b.Seal(now); err != nil {
			return SealReadyBatchesResult{}, err
		}

		orders, err := uow.OrderRepository().GetAllByBatch(ctx, b.ID())
		if err != nil {
			return SealReadyBatchesResult{}, err
		}
		for _, o := range orders {
			if err = o.MarkSortedAtOrigin(); err != nil {
				return SealReadyBatchesResult{}, err
			}
			if err = uow.OrderRepository().Update(ctx, o); err != nil {
				return SealReadyBatchesResult{}, err
			}
		}

		if err = uow.BatchRepository().Update(ctx, b); err != nil {
			return SealReadyBatchesResult{}, err
		}

		result.BatchesSealed++
		result.OrdersSorted += len(orders)
	}

	return result, uow.Commit(ctx)
}
