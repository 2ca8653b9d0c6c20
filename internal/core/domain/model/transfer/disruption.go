package transfer

import (
	"errors"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrDisruptionIsNotConstructed is returned when a Disruption instance was
	// not created through the NewDisruption or RestoreDisruption factory methods.
	ErrDisruptionIsNotConstructed = errors.New("Disruption must be created via NewDisruption constructor")

	// ErrDisruptionAlreadyClosed is returned when closing a disruption that
	// has already ended.
	ErrDisruptionAlreadyClosed = errors.New("disruption is already closed")
)

// Disruption records one outage of a transfer route: why the edge went out
// of service, for how long, and how much traffic was caught by it. At most
// one active disruption exists per route.
type Disruption struct {
	id      kernel.UUID
	routeID kernel.UUID

	disruptionType DisruptionType
	reason         string

	startTime       time.Time
	expectedEndTime *time.Time
	actualEndTime   *time.Time

	// affectedBatchCount and affectedOrderCount snapshot the sealed and
	// in-transit traffic between the hub pair at disable time.
	affectedBatchCount int
	affectedOrderCount int

	isActive      bool
	isConstructed bool
}

// NewDisruption opens a new active disruption for a route.
func NewDisruption(
	id kernel.UUID,
	routeID kernel.UUID,
	disruptionType DisruptionType,
	reason string,
	startTime time.Time,
	expectedEndTime *time.Time,
	affectedBatchCount int,
	affectedOrderCount int,
) (*Disruption, error) {
	d := &Disruption{
		startTime:     startTime,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRouteID(routeID),
		d.setType(disruptionType),
		d.setReason(reason),
		d.setAffectedCounts(affectedBatchCount, affectedOrderCount),
	); err != nil {
		return nil, err
	}

	if expectedEndTime != nil && !expectedEndTime.After(startTime) {
		return nil, errs.NewValueIsInvalidError("expectedEndTime must be after startTime")
	}
	d.expectedEndTime = expectedEndTime

	return d, nil
}

// RestoreDisruption reconstructs a Disruption from persistence.
func RestoreDisruption(
	id kernel.UUID,
	routeID kernel.UUID,
	disruptionType DisruptionType,
	reason string,
	startTime time.Time,
	expectedEndTime *time.Time,
	actualEndTime *time.Time,
	affectedBatchCount int,
	affectedOrderCount int,
	isActive bool,
) (*Disruption, error) {
	d, err := NewDisruption(id, routeID, disruptionType, reason, startTime,
		expectedEndTime, affectedBatchCount, affectedOrderCount)
	if err != nil {
		return nil, err
	}

	d.actualEndTime = actualEndTime
	d.isActive = isActive
	return d, nil
}

// Validate ensures the Disruption instance was properly constructed.
func (d *Disruption) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisruptionIsNotConstructed
	}
	return nil
}

// ID returns the disruption's unique identifier.
func (d *Disruption) ID() kernel.UUID {
	return d.id
}

// RouteID returns the disrupted transfer route.
func (d *Disruption) RouteID() kernel.UUID {
	return d.routeID
}

// Type returns the disruption classification.
func (d *Disruption) Type() DisruptionType {
	return d.disruptionType
}

// Reason returns the free-text explanation.
func (d *Disruption) Reason() string {
	return d.reason
}

// StartTime returns when the outage began.
func (d *Disruption) StartTime() time.Time {
	return d.startTime
}

// ExpectedEndTime returns the forecast end of the outage, nil if unknown.
func (d *Disruption) ExpectedEndTime() *time.Time {
	return d.expectedEndTime
}

// ActualEndTime returns when the outage actually ended, nil while active.
func (d *Disruption) ActualEndTime() *time.Time {
	return d.actualEndTime
}

// AffectedBatchCount returns the number of batches caught by the outage.
func (d *Disruption) AffectedBatchCount() int {
	return d.affectedBatchCount
}

// AffectedOrderCount returns the number of orders caught by the outage.
func (d *Disruption) AffectedOrderCount() int {
	return d.affectedOrderCount
}

// IsActive reports whether the outage is still in effect.
func (d *Disruption) IsActive() bool {
	return d.isActive
}

// Close ends the outage, stamping the actual end time.
func (d *Disruption) Close(at time.Time) error {
	if !d.isActive {
		return ErrDisruptionAlreadyClosed
	}

	d.isActive = false
	d.actualEndTime = &at
	return nil
}

func (d *Disruption) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Disruption) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	d.routeID = routeID
	return nil
}

func (d *Disruption) setType(disruptionType DisruptionType) error {
	if err := disruptionType.Validate(); err != nil {
		return err
	}
	d.disruptionType = disruptionType
	return nil
}

func (d *Disruption) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	d.reason = reason
	return nil
}

func (d *Disruption) setAffectedCounts(batchCount, orderCount int) error {
	if batchCount < 0 {
		return errs.NewValueIsInvalidError("affectedBatchCount")
	}
	if orderCount < 0 {
		return errs.NewValueIsInvalidError("affectedOrderCount")
	}

	d.affectedBatchCount = batchCount
	d.affectedOrderCount = orderCount
	return nil
}
