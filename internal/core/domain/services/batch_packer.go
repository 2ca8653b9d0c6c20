package services

import (
	"errors"
	"sort"

	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
)

// Skip reasons reported by the packer for orders it could not place.
const (
	SkipReasonAlreadyBatched = "order already belongs to a batch"
	SkipReasonNoCapacity     = "no batch with sufficient capacity"
)

// SkippedOrder records one order the packer left unplaced and why.
type SkippedOrder struct {
	OrderID kernel.UUID
	Reason  string
}

// PackResult aggregates the outcome of one packing run. Skipped orders are
// data, not failures: a run that places nothing still succeeds.
type PackResult struct {
	PackedCount    int
	CreatedBatches []*batch.Batch
	Skipped        []SkippedOrder
}

// BatchFactory creates a fresh batch when no existing one can take an
// order. A nil factory disables new-batch creation.
type BatchFactory func() (*batch.Batch, error)

// BatchPacker is a domain service that packs orders into batches using
// first-fit-decreasing: orders are processed heaviest first, and each goes
// into the first open batch with room for it.
//
// Business rules:
//   - Only batches still open for modification receive orders
//   - An order already in a batch is never moved
//   - When nothing fits and a factory is provided, a new batch is opened
//   - Placement mutates both sides: the batch gains an item and the order
//     records its membership
type BatchPacker struct{}

// NewBatchPacker creates a new BatchPacker instance.
func NewBatchPacker() BatchPacker {
	return BatchPacker{}
}

// Pack distributes the given orders over the given batches.
//
// The batches slice is tried in order for every parcel; batches created by
// the factory join the candidate list for subsequent parcels. The returned
// result lists newly created batches and per-order skip reasons.
func (p BatchPacker) Pack(
	orders []*order.Order,
	batches []*batch.Batch,
	newBatch BatchFactory,
) (PackResult, error) {
	var result PackResult

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return PackResult{}, err
		}
	}
	for _, b := range batches {
		if err := b.Validate(); err != nil {
			return PackResult{}, err
		}
	}

	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChargeableWeightKg() > sorted[j].ChargeableWeightKg()
	})

	candidates := make([]*batch.Batch, len(batches))
	copy(candidates, batches)

	for _, o := range sorted {
		if o.IsBatched() {
			result.Skipped = append(result.Skipped, SkippedOrder{
				OrderID: o.ID(),
				Reason:  SkipReasonAlreadyBatched,
			})
			continue
		}

		placed, err := p.placeFirstFit(o, candidates)
		if err != nil {
			return PackResult{}, err
		}
		if placed {
			result.PackedCount++
			continue
		}

		if newBatch == nil {
			result.Skipped = append(result.Skipped, SkippedOrder{
				OrderID: o.ID(),
				Reason:  SkipReasonNoCapacity,
			})
			continue
		}

		created, err := newBatch()
		if err != nil {
			return PackResult{}, err
		}

		placed, err = p.place(o, created)
		if err != nil {
			return PackResult{}, err
		}
		if !placed {
			// The order exceeds even an empty batch's capacity.
			result.Skipped = append(result.Skipped, SkippedOrder{
				OrderID: o.ID(),
				Reason:  SkipReasonNoCapacity,
			})
			continue
		}

		candidates = append(candidates, created)
		result.CreatedBatches = append(result.CreatedBatches, created)
		result.PackedCount++
	}

	return result, nil
}

// placeFirstFit tries the candidate batches in order and places the order
// into the first one with room.
func (p BatchPacker) placeFirstFit(o *order.Order, candidates []*batch.Batch) (bool, error) {
	for _, b := range candidates {
		placed, err := p.place(o, b)
		if err != nil {
			return false, err
		}
		if placed {
			return true, nil
		}
	}
	return false, nil
}

// place attempts a single placement. A capacity miss is not an error.
func (p BatchPacker) place(o *order.Order, b *batch.Batch) (bool, error) {
	if !b.Status().IsModifiable() || !b.Fits(o.ChargeableWeightKg(), o.VolumeCm3()) {
		return false, nil
	}

	if err := b.AddOrder(o.ID(), o.ChargeableWeightKg(), o.VolumeCm3()); err != nil {
		if errors.Is(err, batch.ErrOrderDoesNotFit) {
			return false, nil
		}
		return false, err
	}

	if err := o.AssignToBatch(b.ID()); err != nil {
		return false, err
	}

	return true, nil
}
