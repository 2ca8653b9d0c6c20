package commands

import (
	"context"
)

// AutoBatchSweepCommandHandler finds every office pair with unbatched orders
// waiting and runs the automatic packer on each. Each pair is packed in its
// own transaction so one failure cannot roll back the pairs already done.
type AutoBatchSweepCommandHandler struct {
	uowFactory BatchUoWFactory
	packing    AutoBatchOrdersCommandHandler
}

// NewAutoBatchSweepCommandHandler creates a handler for the batching sweep.
func NewAutoBatchSweepCommandHandler(
	uowFactory BatchUoWFactory,
	packing AutoBatchOrdersCommandHandler,
) AutoBatchSweepCommandHandler {
	return AutoBatchSweepCommandHandler{
		uowFactory: uowFactory,
		packing:    packing,
	}
}

// Handle processes the sweep command and reports what it packed. Per-pair
// failures land in the result, not in the returned error.
func (h *AutoBatchSweepCommandHandler) Handle(
	ctx context.Context, cmd AutoBatchSweepCommand,
) (AutoBatchSweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutoBatchSweepResult{}, err
	}

	uow := h.uowFactory.Create()
	pairs, err := uow.OrderRepository().GetBatchableOfficePairs(ctx)
	if err != nil {
		return AutoBatchSweepResult{}, err
	}

	var result AutoBatchSweepResult
	maxWeightKg, maxVolumeCm3, maxOrders := cmd.Capacity()

	for _, pair := range pairs {
		result.PairsChecked++

		pairCmd, pairErr := NewAutoBatchOrdersCommand(
			pair.OfficeID, pair.DestinationOfficeID,
			maxWeightKg, maxVolumeCm3, maxOrders,
		)
		if pairErr == nil {
			var packed AutoBatchOrdersResult
			packed, pairErr = h.packing.Handle(ctx, pairCmd)
			if pairErr == nil {
				result.PackedCount += packed.PackedCount
				result.CreatedBatches += packed.CreatedBatches
				result.SkippedCount += len(packed.Skipped)
				continue
			}
		}

		result.Failures = append(result.Failures, BatchSweepFailure{
			OfficeID:            pair.OfficeID,
			DestinationOfficeID: pair.DestinationOfficeID,
			Err:                 pairErr,
		})
	}

	return result, nil
}
