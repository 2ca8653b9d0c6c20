package batch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not created
	// through the NewBatch or RestoreBatch factory methods.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrBatchIsNotModifiable is returned when orders are added to or removed
	// from a batch that is no longer open for modification.
	ErrBatchIsNotModifiable = errors.New("batch is not open for modification")

	// ErrBatchIsEmpty is returned when sealing a batch with no orders.
	ErrBatchIsEmpty = errors.New("batch contains no orders")

	// ErrOrderDoesNotFit is returned when adding an order would exceed the
	// batch's weight, volume, or count capacity.
	ErrOrderDoesNotFit = errors.New("order does not fit into batch")

	// ErrOrderAlreadyInBatch is returned when adding an order the batch
	// already contains.
	ErrOrderAlreadyInBatch = errors.New("order is already in batch")

	// ErrOrderNotInBatch is returned when removing an order the batch does
	// not contain.
	ErrOrderNotInBatch = errors.New("order is not in batch")
)

// Item records one order inside a batch together with the weight and volume
// it contributes. Keeping items on the aggregate makes the running counters
// checkable against live recomputation.
type Item struct {
	OrderID   kernel.UUID
	WeightKg  float64
	VolumeCm3 *float64
}

// Batch represents a shipment of orders traveling together between two
// offices. It is the aggregate root for inter-office transport: orders are
// packed while the batch is open, frozen at sealing, and released at
// distribution or cancellation.
//
// Batch invariants:
//   - Running weight, volume, and count always equal the sums over items
//   - Capacity limits are never exceeded
//   - Content is frozen once the batch leaves Open/Processing
//   - Status transitions follow the batch state machine
type Batch struct {
	id                  kernel.UUID
	batchCode           string
	originOfficeID      kernel.UUID
	destinationOfficeID kernel.UUID

	status Status

	maxWeightKg  float64
	maxVolumeCm3 *float64
	maxOrders    *int

	currentWeightKg  float64
	currentVolumeCm3 float64
	items            []Item

	createdAt  time.Time
	sealedAt   *time.Time
	departedAt *time.Time
	arrivedAt  *time.Time

	isConstructed bool
}

// NewBatch creates a new empty Batch in Open status.
//
// The batch code is derived from the office pair and the creation time:
// BATCH-<orig4>-<dest4>-<yyyyMMddHHmmss>, where orig4 and dest4 are the
// first four characters of the office identifiers.
func NewBatch(
	id kernel.UUID,
	originOfficeID kernel.UUID,
	destinationOfficeID kernel.UUID,
	maxWeightKg float64,
	maxVolumeCm3 *float64,
	maxOrders *int,
	createdAt time.Time,
) (*Batch, error) {
	b := &Batch{
		status:        Open,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOffices(originOfficeID, destinationOfficeID),
		b.setCapacity(maxWeightKg, maxVolumeCm3, maxOrders),
	); err != nil {
		return nil, err
	}

	b.batchCode = buildBatchCode(originOfficeID, destinationOfficeID, createdAt)
	return b, nil
}

// RestoreBatch reconstructs a Batch from persistence, recomputing the
// running counters from the stored items.
func RestoreBatch(
	id kernel.UUID,
	batchCode string,
	originOfficeID kernel.UUID,
	destinationOfficeID kernel.UUID,
	status Status,
	maxWeightKg float64,
	maxVolumeCm3 *float64,
	maxOrders *int,
	items []Item,
	createdAt time.Time,
	sealedAt, departedAt, arrivedAt *time.Time,
) (*Batch, error) {
	b, err := NewBatch(id, originOfficeID, destinationOfficeID, maxWeightKg, maxVolumeCm3, maxOrders, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if batchCode == "" {
		return nil, errs.NewValueIsRequiredError("batchCode")
	}

	b.batchCode = batchCode
	b.status = status
	b.items = make([]Item, len(items))
	copy(b.items, items)
	for _, item := range items {
		b.currentWeightKg += item.WeightKg
		if item.VolumeCm3 != nil {
			b.currentVolumeCm3 += *item.VolumeCm3
		}
	}
	b.sealedAt = sealedAt
	b.departedAt = departedAt
	b.arrivedAt = arrivedAt
	return b, nil
}

// buildBatchCode derives the human-readable batch code from the office pair
// and the creation time.
func buildBatchCode(originOfficeID, destinationOfficeID kernel.UUID, createdAt time.Time) string {
	orig := strings.ToUpper(originOfficeID.String()[:4])
	dest := strings.ToUpper(destinationOfficeID.String()[:4])
	return fmt.Sprintf("BATCH-%s-%s-%s", orig, dest, createdAt.Format("20060102150405"))
}

// Validate ensures the Batch instance was properly constructed.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// BatchCode returns the human-readable batch code.
func (b *Batch) BatchCode() string {
	return b.batchCode
}

// OriginOfficeID returns the office the batch is packed at.
func (b *Batch) OriginOfficeID() kernel.UUID {
	return b.originOfficeID
}

// DestinationOfficeID returns the office the batch travels to.
func (b *Batch) DestinationOfficeID() kernel.UUID {
	return b.destinationOfficeID
}

// Status returns the current status of the batch.
func (b *Batch) Status() Status {
	return b.status
}

// MaxWeightKg returns the weight capacity in kilograms.
func (b *Batch) MaxWeightKg() float64 {
	return b.maxWeightKg
}

// MaxVolumeCm3 returns the optional volume capacity in cubic centimeters.
func (b *Batch) MaxVolumeCm3() *float64 {
	return b.maxVolumeCm3
}

// MaxOrders returns the optional order count capacity.
func (b *Batch) MaxOrders() *int {
	return b.maxOrders
}

// CurrentWeightKg returns the running weight of all contained orders.
func (b *Batch) CurrentWeightKg() float64 {
	return b.currentWeightKg
}

// CurrentVolumeCm3 returns the running volume of all contained orders.
// Orders without dimensions contribute zero.
func (b *Batch) CurrentVolumeCm3() float64 {
	return b.currentVolumeCm3
}

// OrderCount returns the number of contained orders.
func (b *Batch) OrderCount() int {
	return len(b.items)
}

// Items returns a copy of the contained order items.
func (b *Batch) Items() []Item {
	items := make([]Item, len(b.items))
	copy(items, b.items)
	return items
}

// OrderIDs returns the identifiers of all contained orders.
func (b *Batch) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(b.items))
	for _, item := range b.items {
		ids = append(ids, item.OrderID)
	}
	return ids
}

// Contains reports whether the batch holds the given order.
func (b *Batch) Contains(orderID kernel.UUID) bool {
	for _, item := range b.items {
		if item.OrderID.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// CreatedAt returns when the batch was opened.
func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

// SealedAt returns when the batch was sealed, nil if not yet sealed.
func (b *Batch) SealedAt() *time.Time {
	return b.sealedAt
}

// DepartedAt returns when the batch departed, nil if not yet departed.
func (b *Batch) DepartedAt() *time.Time {
	return b.departedAt
}

// ArrivedAt returns when the batch arrived, nil if not yet arrived.
func (b *Batch) ArrivedAt() *time.Time {
	return b.arrivedAt
}

// Fits reports whether an order of the given weight and volume would fit
// into the batch's remaining capacity. A nil volume contributes zero; the
// volume and order count limits are only enforced when the batch carries
// them.
func (b *Batch) Fits(weightKg float64, volumeCm3 *float64) bool {
	if b.maxOrders != nil && len(b.items) >= *b.maxOrders {
		return false
	}
	if b.currentWeightKg+weightKg > b.maxWeightKg {
		return false
	}
	if b.maxVolumeCm3 != nil && volumeCm3 != nil &&
		b.currentVolumeCm3+*volumeCm3 > *b.maxVolumeCm3 {
		return false
	}
	return true
}

// AddOrder packs an order into the batch. The batch must be open for
// modification and have remaining capacity. The first order moves the batch
// from Open to Processing.
func (b *Batch) AddOrder(orderID kernel.UUID, weightKg float64, volumeCm3 *float64) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !b.status.IsModifiable() {
		return ErrBatchIsNotModifiable
	}
	if b.Contains(orderID) {
		return ErrOrderAlreadyInBatch
	}
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	if !b.Fits(weightKg, volumeCm3) {
		return ErrOrderDoesNotFit
	}

	b.items = append(b.items, Item{OrderID: orderID, WeightKg: weightKg, VolumeCm3: volumeCm3})
	b.currentWeightKg += weightKg
	if volumeCm3 != nil {
		b.currentVolumeCm3 += *volumeCm3
	}

	if b.status == Open {
		b.status = Processing
	}
	return nil
}

// RemoveOrder takes an order out of the batch. The batch must still be open
// for modification.
func (b *Batch) RemoveOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !b.status.IsModifiable() {
		return ErrBatchIsNotModifiable
	}

	for i, item := range b.items {
		if !item.OrderID.IsEqual(orderID) {
			continue
		}

		b.items = append(b.items[:i], b.items[i+1:]...)
		b.currentWeightKg -= item.WeightKg
		if item.VolumeCm3 != nil {
			b.currentVolumeCm3 -= *item.VolumeCm3
		}
		return nil
	}

	return ErrOrderNotInBatch
}

// Seal freezes the batch content. A batch must hold at least one order to
// be sealed.
func (b *Batch) Seal(at time.Time) error {
	if len(b.items) == 0 {
		return ErrBatchIsEmpty
	}

	newStatus, err := b.status.TransitionTo(Sealed)
	if err != nil {
		return err
	}

	b.status = newStatus
	b.sealedAt = &at
	return nil
}

// Depart records that the batch left its origin office.
func (b *Batch) Depart(at time.Time) error {
	newStatus, err := b.status.TransitionTo(InTransit)
	if err != nil {
		return err
	}

	b.status = newStatus
	b.departedAt = &at
	return nil
}

// Arrive records that the batch reached its destination office.
func (b *Batch) Arrive(at time.Time) error {
	newStatus, err := b.status.TransitionTo(Arrived)
	if err != nil {
		return err
	}

	b.status = newStatus
	b.arrivedAt = &at
	return nil
}

// Distribute records that all orders were handed over for final delivery. Terminal.
func (b *Batch) Distribute() error {
	newStatus, err := b.status.TransitionTo(Distributed)
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Cancel terminates the batch and empties it. Not allowed once the batch
// has departed. The caller is responsible for releasing the contained
// orders back to their origin office.
func (b *Batch) Cancel() error {
	newStatus, err := b.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	b.status = newStatus
	b.items = nil
	b.currentWeightKg = 0
	b.currentVolumeCm3 = 0
	return nil
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setOffices(originOfficeID, destinationOfficeID kernel.UUID) error {
	if err := originOfficeID.Validate(); err != nil {
		return err
	}
	if err := destinationOfficeID.Validate(); err != nil {
		return err
	}
	if originOfficeID.IsEqual(destinationOfficeID) {
		return errs.NewValueIsInvalidError("origin and destination offices must differ")
	}

	b.originOfficeID = originOfficeID
	b.destinationOfficeID = destinationOfficeID
	return nil
}

func (b *Batch) setCapacity(maxWeightKg float64, maxVolumeCm3 *float64, maxOrders *int) error {
	if maxWeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxWeightKg",
			fmt.Errorf("%v is not greater than 0", maxWeightKg))
	}
	if maxVolumeCm3 != nil && *maxVolumeCm3 <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxVolumeCm3",
			fmt.Errorf("%v is not greater than 0", *maxVolumeCm3))
	}
	if maxOrders != nil && *maxOrders <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxOrders",
			fmt.Errorf("%d is not greater than 0", *maxOrders))
	}

	b.maxWeightKg = maxWeightKg
	b.maxVolumeCm3 = maxVolumeCm3
	b.maxOrders = maxOrders
	return nil
}
