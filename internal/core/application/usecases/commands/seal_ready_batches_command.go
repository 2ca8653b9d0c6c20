package commands

import (
	"errors"
	"time"

	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var ErrSealReadyBatchesCommandIsNotConstructed = errors.New(
	"SealReadyBatchesCommand must be created via NewSealReadyBatchesCommand constructor",
)

// SealReadyBatchesCommand represents a request to sweep the open batches
// and seal the ones that have been accumulating long enough while holding
// a minimum number of orders.
type SealReadyBatchesCommand struct { //nolint:recvcheck //using for validation
	maxAge    time.Duration
	minOrders int

	guard guard.ConstructorGuard
}

// NewSealReadyBatchesCommand creates a command for the sealing sweep.
func NewSealReadyBatchesCommand(maxAge time.Duration, minOrders int) (SealReadyBatchesCommand, error) {
	if maxAge <= 0 {
		return SealReadyBatchesCommand{}, errs.NewValueIsInvalidError("maxAge")
	}
	if minOrders < 1 {
		return SealReadyBatchesCommand{}, errs.NewValueIsInvalidError("minOrders")
	}

	return SealReadyBatchesCommand{
		maxAge:    maxAge,
		minOrders: minOrders,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SealReadyBatchesCommand) Validate() error {
	return c.guard.Validate(ErrSealReadyBatchesCommandIsNotConstructed)
}

// MaxAge returns how long a batch may accumulate before sealing.
func (c SealReadyBatchesCommand) MaxAge() time.Duration {
	return c.maxAge
}

// MinOrders returns the smallest batch worth sealing automatically.
func (c SealReadyBatchesCommand) MinOrders() int {
	return c.minOrders
}

// SealReadyBatchesResult summarizes one sealing sweep.
type SealReadyBatchesResult struct {
	BatchesSealed int
	OrdersSorted  int
}
