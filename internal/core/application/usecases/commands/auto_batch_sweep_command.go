package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var ErrAutoBatchSweepCommandIsNotConstructed = errors.New(
	"AutoBatchSweepCommand must be created via NewAutoBatchSweepCommand constructor",
)

// AutoBatchSweepCommand represents a request to run automatic batching over
// every office pair that has unbatched orders waiting. New batches opened
// during the sweep use the given capacity limits.
type AutoBatchSweepCommand struct { //nolint:recvcheck //using for validation
	maxWeightKg  float64
	maxVolumeCm3 *float64
	maxOrders    *int

	guard guard.ConstructorGuard
}

// NewAutoBatchSweepCommand creates a command for the batching sweep.
func NewAutoBatchSweepCommand(
	maxWeightKg float64,
	maxVolumeCm3 *float64,
	maxOrders *int,
) (AutoBatchSweepCommand, error) {
	if maxWeightKg <= 0 {
		return AutoBatchSweepCommand{}, errs.NewValueIsInvalidError("maxWeightKg")
	}
	if maxVolumeCm3 != nil && *maxVolumeCm3 <= 0 {
		return AutoBatchSweepCommand{}, errs.NewValueIsInvalidError("maxVolumeCm3")
	}
	if maxOrders != nil && *maxOrders <= 0 {
		return AutoBatchSweepCommand{}, errs.NewValueIsInvalidError("maxOrders")
	}

	return AutoBatchSweepCommand{
		maxWeightKg:  maxWeightKg,
		maxVolumeCm3: maxVolumeCm3,
		maxOrders:    maxOrders,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoBatchSweepCommand) Validate() error {
	return c.guard.Validate(ErrAutoBatchSweepCommandIsNotConstructed)
}

// Capacity returns the limits applied to batches the sweep opens.
func (c AutoBatchSweepCommand) Capacity() (maxWeightKg float64, maxVolumeCm3 *float64, maxOrders *int) {
	return c.maxWeightKg, c.maxVolumeCm3, c.maxOrders
}

// BatchSweepFailure records one office pair the sweep could not pack.
type BatchSweepFailure struct {
	OfficeID            kernel.UUID
	DestinationOfficeID kernel.UUID
	Err                 error
}

// AutoBatchSweepResult summarizes one batching sweep. Per-pair failures are
// data, not control flow: the sweep continues past them and reports them here.
type AutoBatchSweepResult struct {
	PairsChecked   int
	PackedCount    int
	CreatedBatches int
	SkippedCount   int
	Failures       []BatchSweepFailure
}
