package order

import (
	"errors"
	"fmt"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyBatched is returned when attempting to attach an order
	// that already belongs to a batch. An order belongs to at most one batch.
	ErrOrderAlreadyBatched = errors.New("order already belongs to a batch")

	// ErrOrderNotBatched is returned when a batch operation targets an order
	// that does not belong to any batch.
	ErrOrderNotBatched = errors.New("order does not belong to a batch")
)

// Order represents a parcel moving through the postal network. It is the
// aggregate root for the routing subset of the parcel lifecycle: acceptance,
// consolidation to the province warehouse, inter-province batching, and
// final delivery.
//
// Order invariants:
//   - Must have a valid unique identifier and a non-empty tracking number
//   - Chargeable weight must be positive
//   - Dimensions are optional but must be supplied together and be positive
//   - Belongs to at most one batch at a time
//   - Status transitions follow the order state machine
type Order struct {
	id                  kernel.UUID
	trackingNumber      string
	originOfficeID      kernel.UUID
	currentOfficeID     kernel.UUID
	destinationOfficeID kernel.UUID
	destinationWardCode kernel.WardCode

	chargeableWeightKg float64

	// lengthCm, widthCm and heightCm are optional. Volume is derived only
	// when all three are present.
	lengthCm *float64
	widthCm  *float64
	heightCm *float64

	consolidationRouteID *kernel.UUID
	batchID              *kernel.UUID
	createdAt            time.Time
	consolidatedAt       *time.Time

	status        Status
	isConstructed bool
}

// NewOrder creates a new Order in Created status located at its origin office.
//
// Dimensions are optional: pass all three pointers or none. A partially
// dimensioned parcel is rejected because its volume would be undefined.
func NewOrder(
	id kernel.UUID,
	trackingNumber string,
	originOfficeID kernel.UUID,
	destinationOfficeID kernel.UUID,
	destinationWardCode kernel.WardCode,
	chargeableWeightKg float64,
	lengthCm, widthCm, heightCm *float64,
) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingNumber(trackingNumber),
		o.setOriginOfficeID(originOfficeID),
		o.setDestinationOfficeID(destinationOfficeID),
		o.setDestinationWardCode(destinationWardCode),
		o.setChargeableWeight(chargeableWeightKg),
		o.setDimensions(lengthCm, widthCm, heightCm),
	); err != nil {
		return nil, err
	}

	o.currentOfficeID = originOfficeID
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Used exclusively by
// repository implementations; the status and placement are taken as stored.
func RestoreOrder(
	id kernel.UUID,
	trackingNumber string,
	originOfficeID kernel.UUID,
	currentOfficeID kernel.UUID,
	destinationOfficeID kernel.UUID,
	destinationWardCode kernel.WardCode,
	chargeableWeightKg float64,
	lengthCm, widthCm, heightCm *float64,
	status Status,
	consolidationRouteID *kernel.UUID,
	batchID *kernel.UUID,
	createdAt time.Time,
	consolidatedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, trackingNumber, originOfficeID, destinationOfficeID,
		destinationWardCode, chargeableWeightKg, lengthCm, widthCm, heightCm)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := currentOfficeID.Validate(); err != nil {
		return nil, err
	}

	o.currentOfficeID = currentOfficeID
	o.status = status
	o.consolidationRouteID = consolidationRouteID
	o.batchID = batchID
	o.createdAt = createdAt
	o.consolidatedAt = consolidatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingNumber returns the customer-facing tracking number.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// OriginOfficeID returns the office where the parcel was accepted.
func (o *Order) OriginOfficeID() kernel.UUID {
	return o.originOfficeID
}

// CurrentOfficeID returns the office where the parcel currently sits.
func (o *Order) CurrentOfficeID() kernel.UUID {
	return o.currentOfficeID
}

// DestinationOfficeID returns the office the parcel is addressed to.
func (o *Order) DestinationOfficeID() kernel.UUID {
	return o.destinationOfficeID
}

// DestinationWardCode returns the ward the parcel is addressed to.
func (o *Order) DestinationWardCode() kernel.WardCode {
	return o.destinationWardCode
}

// ChargeableWeightKg returns the billed weight in kilograms.
func (o *Order) ChargeableWeightKg() float64 {
	return o.chargeableWeightKg
}

// VolumeCm3 returns the parcel volume in cubic centimeters, or nil when any
// dimension is missing.
func (o *Order) VolumeCm3() *float64 {
	if o.lengthCm == nil || o.widthCm == nil || o.heightCm == nil {
		return nil
	}
	v := *o.lengthCm * *o.widthCm * *o.heightCm
	return &v
}

// Dimensions returns the optional parcel dimensions in centimeters.
func (o *Order) Dimensions() (length, width, height *float64) {
	return o.lengthCm, o.widthCm, o.heightCm
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ConsolidationRouteID returns the assigned consolidation route, nil if unassigned.
func (o *Order) ConsolidationRouteID() *kernel.UUID {
	return o.consolidationRouteID
}

// BatchID returns the batch the order belongs to, nil if unbatched.
func (o *Order) BatchID() *kernel.UUID {
	return o.batchID
}

// CreatedAt returns when the parcel was accepted into the network.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConsolidatedAt returns when the order reached its province warehouse,
// nil if not yet consolidated.
func (o *Order) ConsolidatedAt() *time.Time {
	return o.consolidatedAt
}

// IsBatched reports whether the order belongs to a batch.
func (o *Order) IsBatched() bool {
	return o.batchID != nil
}

// AssignToConsolidationRoute assigns the order to a consolidation route and
// moves it to AtOriginOffice.
//
// The operation is idempotent: an order that already carries a route keeps
// its current assignment, whichever route that is.
func (o *Order) AssignToConsolidationRoute(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	if o.consolidationRouteID != nil {
		return nil
	}

	newStatus, err := o.status.TransitionTo(AtOriginOffice)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.consolidationRouteID = &routeID
	return nil
}

// Consolidate moves the order to its province warehouse, stamping the
// consolidation time. The order must be assigned to a consolidation route.
func (o *Order) Consolidate(warehouseID kernel.UUID, at time.Time) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	if o.consolidationRouteID == nil {
		return errs.NewValueIsRequiredError("consolidationRouteID")
	}

	newStatus, err := o.status.TransitionTo(AtProvinceWarehouse)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.currentOfficeID = warehouseID
	o.consolidatedAt = &at
	return nil
}

// AssignToBatch attaches the order to a batch. The order must not already
// belong to one. The status is unchanged; sealing the batch moves it.
func (o *Order) AssignToBatch(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	if o.batchID != nil {
		return ErrOrderAlreadyBatched
	}

	o.batchID = &batchID
	return nil
}

// RemoveFromBatch detaches the order from its batch without changing status.
// Used while the batch is still open for modification.
func (o *Order) RemoveFromBatch() error {
	if o.batchID == nil {
		return ErrOrderNotBatched
	}

	o.batchID = nil
	return nil
}

// MarkSortedAtOrigin records that the order was sealed into an outbound batch.
func (o *Order) MarkSortedAtOrigin() error {
	newStatus, err := o.status.TransitionTo(SortedAtOrigin)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// DepartToHub records that the order's batch departed toward a regional hub.
func (o *Order) DepartToHub() error {
	newStatus, err := o.status.TransitionTo(InTransitToHub)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ArriveAtDestination records arrival of the order's batch at the
// destination office and relocates the order there.
func (o *Order) ArriveAtDestination(destinationOfficeID kernel.UUID) error {
	if err := destinationOfficeID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(AtDestinationOffice)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.currentOfficeID = destinationOfficeID
	return nil
}

// StartDelivery detaches the order from its batch and sends it out for
// final delivery.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.TransitionTo(OutForDelivery)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.batchID = nil
	return nil
}

// CompleteDelivery marks the order as delivered. Terminal.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// FailDelivery records a failed delivery attempt.
func (o *Order) FailDelivery() error {
	newStatus, err := o.status.TransitionTo(DeliveryFailed)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReleaseFromBatch detaches the order from a cancelled batch and returns it
// to AtOriginOffice so it can be rebatched.
func (o *Order) ReleaseFromBatch() error {
	if o.batchID == nil {
		return ErrOrderNotBatched
	}

	if o.status != AtOriginOffice {
		newStatus, err := o.status.TransitionTo(AtOriginOffice)
		if err != nil {
			return err
		}
		o.status = newStatus
	}

	o.batchID = nil
	return nil
}

// Cancel terminates the order. Not allowed once the parcel is in transit or delivered.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setOriginOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.originOfficeID = id
	return nil
}

func (o *Order) setDestinationOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.destinationOfficeID = id
	return nil
}

func (o *Order) setDestinationWardCode(code kernel.WardCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.destinationWardCode = code
	return nil
}

func (o *Order) setChargeableWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("chargeableWeightKg",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	o.chargeableWeightKg = weightKg
	return nil
}

// setDimensions accepts either all three dimensions or none.
func (o *Order) setDimensions(lengthCm, widthCm, heightCm *float64) error {
	provided := 0
	for _, d := range []*float64{lengthCm, widthCm, heightCm} {
		if d != nil {
			provided++
		}
	}
	if provided == 0 {
		return nil
	}
	if provided != 3 {
		return errs.NewValueIsInvalidError("dimensions must be supplied together")
	}
	for _, d := range []*float64{lengthCm, widthCm, heightCm} {
		if *d <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("dimensions",
				fmt.Errorf("%v is not greater than 0", *d))
		}
	}

	o.lengthCm = lengthCm
	o.widthCm = widthCm
	o.heightCm = heightCm
	return nil
}
