package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/services"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var ErrAutoBatchOrdersCommandIsNotConstructed = errors.New(
	"AutoBatchOrdersCommand must be created via NewAutoBatchOrdersCommand constructor",
)

// AutoBatchOrdersCommand represents a request to automatically pack the
// unbatched orders waiting at one office for one destination. New batches
// opened by the packer use the given capacity limits.
type AutoBatchOrdersCommand struct { //nolint:recvcheck //using for validation
	officeID            kernel.UUID
	destinationOfficeID kernel.UUID
	maxWeightKg         float64
	maxVolumeCm3        *float64
	maxOrders           *int

	guard guard.ConstructorGuard
}

// NewAutoBatchOrdersCommand creates a command for an automatic batching run.
func NewAutoBatchOrdersCommand(
	officeID kernel.UUID,
	destinationOfficeID kernel.UUID,
	maxWeightKg float64,
	maxVolumeCm3 *float64,
	maxOrders *int,
) (AutoBatchOrdersCommand, error) {
	if err := officeID.Validate(); err != nil {
		return AutoBatchOrdersCommand{}, err
	}
	if err := destinationOfficeID.Validate(); err != nil {
		return AutoBatchOrdersCommand{}, err
	}
	if maxWeightKg <= 0 {
		return AutoBatchOrdersCommand{}, errs.NewValueIsInvalidError("maxWeightKg")
	}
	if maxVolumeCm3 != nil && *maxVolumeCm3 <= 0 {
		return AutoBatchOrdersCommand{}, errs.NewValueIsInvalidError("maxVolumeCm3")
	}
	if maxOrders != nil && *maxOrders <= 0 {
		return AutoBatchOrdersCommand{}, errs.NewValueIsInvalidError("maxOrders")
	}

	return AutoBatchOrdersCommand{
		officeID:            officeID,
		destinationOfficeID: destinationOfficeID,
		maxWeightKg:         maxWeightKg,
		maxVolumeCm3:        maxVolumeCm3,
		maxOrders:           maxOrders,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoBatchOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAutoBatchOrdersCommandIsNotConstructed)
}

// OfficeID returns the office whose waiting orders are packed.
func (c AutoBatchOrdersCommand) OfficeID() kernel.UUID {
	return c.officeID
}

// DestinationOfficeID returns the destination the packed batches serve.
func (c AutoBatchOrdersCommand) DestinationOfficeID() kernel.UUID {
	return c.destinationOfficeID
}

// Capacity returns the limits applied to batches the packer opens.
func (c AutoBatchOrdersCommand) Capacity() (maxWeightKg float64, maxVolumeCm3 *float64, maxOrders *int) {
	return c.maxWeightKg, c.maxVolumeCm3, c.maxOrders
}

// AutoBatchOrdersResult summarizes one automatic batching run.
type AutoBatchOrdersResult struct {
	PackedCount    int
	CreatedBatches int
	Skipped        []services.SkippedOrder
}
