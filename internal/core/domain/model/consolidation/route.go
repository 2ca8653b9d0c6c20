package consolidation

import (
	"errors"
	"fmt"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

// Readiness thresholds. A route is ready when pending orders reach half of a
// configured capacity, or when enough time passed since the last run.
const (
	capacityReadinessFraction = 0.5
	sinceLastRunThreshold     = 2 * time.Hour
	oldestPendingThreshold    = 1 * time.Hour
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not created
	// through the NewRoute or RestoreRoute factory methods.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

	// ErrRouteIsInactive is returned when consolidating over a deactivated route.
	ErrRouteIsInactive = errors.New("consolidation route is inactive")

	// ErrNoPendingOrders is returned when a manually triggered consolidation
	// finds nothing to collect on the route.
	ErrNoPendingOrders = errors.New("no pending orders to consolidate")
)

// Route represents a consolidation route: an ordered sweep of wards inside
// one province whose pending orders are collected to the province warehouse.
//
// Route invariants:
//   - Must serve at least one ward
//   - Capacity limits are optional; a nil limit disables that threshold
//   - Consolidation metrics only grow
type Route struct {
	id                     kernel.UUID
	name                   string
	provinceCode           kernel.ProvinceCode
	destinationWarehouseID kernel.UUID

	// wardCodes is the ordered stop list of the sweep.
	wardCodes []kernel.WardCode

	maxWeightKg  *float64
	maxVolumeCm3 *float64
	maxOrders    *int

	isActive                bool
	totalConsolidatedOrders int
	lastConsolidationAt     *time.Time

	isConstructed bool
}

// NewRoute creates a new active Route with validation.
func NewRoute(
	id kernel.UUID,
	name string,
	provinceCode kernel.ProvinceCode,
	destinationWarehouseID kernel.UUID,
	wardCodes []kernel.WardCode,
	maxWeightKg *float64,
	maxVolumeCm3 *float64,
	maxOrders *int,
) (*Route, error) {
	r := &Route{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setProvinceCode(provinceCode),
		r.setDestinationWarehouseID(destinationWarehouseID),
		r.setWardCodes(wardCodes),
		r.setCapacity(maxWeightKg, maxVolumeCm3, maxOrders),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route from persistence.
func RestoreRoute(
	id kernel.UUID,
	name string,
	provinceCode kernel.ProvinceCode,
	destinationWarehouseID kernel.UUID,
	wardCodes []kernel.WardCode,
	maxWeightKg *float64,
	maxVolumeCm3 *float64,
	maxOrders *int,
	isActive bool,
	totalConsolidatedOrders int,
	lastConsolidationAt *time.Time,
) (*Route, error) {
	r, err := NewRoute(id, name, provinceCode, destinationWarehouseID, wardCodes,
		maxWeightKg, maxVolumeCm3, maxOrders)
	if err != nil {
		return nil, err
	}

	if totalConsolidatedOrders < 0 {
		return nil, errs.NewValueIsInvalidError("totalConsolidatedOrders")
	}

	r.isActive = isActive
	r.totalConsolidatedOrders = totalConsolidatedOrders
	r.lastConsolidationAt = lastConsolidationAt
	return r, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Name returns the route's display name.
func (r *Route) Name() string {
	return r.name
}

// ProvinceCode returns the province the route operates in.
func (r *Route) ProvinceCode() kernel.ProvinceCode {
	return r.provinceCode
}

// DestinationWarehouseID returns the province warehouse the sweep terminates at.
func (r *Route) DestinationWarehouseID() kernel.UUID {
	return r.destinationWarehouseID
}

// WardCodes returns a copy of the ordered stop list.
func (r *Route) WardCodes() []kernel.WardCode {
	codes := make([]kernel.WardCode, len(r.wardCodes))
	copy(codes, r.wardCodes)
	return codes
}

// MaxWeightKg returns the optional weight capacity per run.
func (r *Route) MaxWeightKg() *float64 {
	return r.maxWeightKg
}

// MaxVolumeCm3 returns the optional volume capacity per run.
func (r *Route) MaxVolumeCm3() *float64 {
	return r.maxVolumeCm3
}

// MaxOrders returns the optional order count capacity per run.
func (r *Route) MaxOrders() *int {
	return r.maxOrders
}

// IsActive reports whether the route accepts assignments and sweeps.
func (r *Route) IsActive() bool {
	return r.isActive
}

// TotalConsolidatedOrders returns the number of orders the route has moved
// over its lifetime.
func (r *Route) TotalConsolidatedOrders() int {
	return r.totalConsolidatedOrders
}

// LastConsolidationAt returns when the route last ran, nil if never.
func (r *Route) LastConsolidationAt() *time.Time {
	return r.lastConsolidationAt
}

// ServesWard reports whether the ward is on the route's stop list.
func (r *Route) ServesWard(ward kernel.WardCode) bool {
	for _, code := range r.wardCodes {
		if code.IsEqual(ward) {
			return true
		}
	}
	return false
}

// Activate opens the route for assignments and sweeps.
func (r *Route) Activate() {
	r.isActive = true
}

// Deactivate closes the route. Pending orders keep their assignment.
func (r *Route) Deactivate() {
	r.isActive = false
}

// Rename changes the route's display name.
func (r *Route) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

// UpdateStops replaces the ordered stop list.
func (r *Route) UpdateStops(wardCodes []kernel.WardCode) error {
	return r.setWardCodes(wardCodes)
}

// UpdateCapacity replaces the per-run capacity limits.
func (r *Route) UpdateCapacity(maxWeightKg, maxVolumeCm3 *float64, maxOrders *int) error {
	return r.setCapacity(maxWeightKg, maxVolumeCm3, maxOrders)
}

// ReadyForConsolidation reports whether a sweep should run now.
//
// A route with no pending orders is never ready. Otherwise it is ready when
// any of the following holds:
//   - pending count reached half of the order capacity
//   - pending weight reached half of the weight capacity
//   - the route ran before and more than two hours passed since
//   - the route never ran and the oldest pending order waited over an hour
//
// A nil capacity disables its threshold.
func (r *Route) ReadyForConsolidation(
	pendingCount int,
	pendingWeightKg float64,
	oldestPendingAt *time.Time,
	now time.Time,
) bool {
	if !r.isActive || pendingCount == 0 {
		return false
	}

	if r.maxOrders != nil && float64(pendingCount) >= capacityReadinessFraction*float64(*r.maxOrders) {
		return true
	}
	if r.maxWeightKg != nil && pendingWeightKg >= capacityReadinessFraction*(*r.maxWeightKg) {
		return true
	}

	if r.lastConsolidationAt != nil {
		return now.Sub(*r.lastConsolidationAt) > sinceLastRunThreshold
	}
	if oldestPendingAt != nil {
		return now.Sub(*oldestPendingAt) > oldestPendingThreshold
	}
	return false
}

// RecordConsolidation bumps the route metrics after a completed sweep.
func (r *Route) RecordConsolidation(orderCount int, at time.Time) error {
	if !r.isActive {
		return ErrRouteIsInactive
	}
	if orderCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderCount",
			fmt.Errorf("%d is not greater than 0", orderCount))
	}

	r.totalConsolidatedOrders += orderCount
	r.lastConsolidationAt = &at
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Route) setProvinceCode(code kernel.ProvinceCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	r.provinceCode = code
	return nil
}

func (r *Route) setDestinationWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.destinationWarehouseID = id
	return nil
}

func (r *Route) setWardCodes(wardCodes []kernel.WardCode) error {
	if len(wardCodes) == 0 {
		return errs.NewValueIsRequiredError("wardCodes")
	}
	for _, code := range wardCodes {
		if err := code.Validate(); err != nil {
			return err
		}
	}

	r.wardCodes = make([]kernel.WardCode, len(wardCodes))
	copy(r.wardCodes, wardCodes)
	return nil
}

func (r *Route) setCapacity(maxWeightKg, maxVolumeCm3 *float64, maxOrders *int) error {
	if maxWeightKg != nil && *maxWeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxWeightKg",
			fmt.Errorf("%v is not greater than 0", *maxWeightKg))
	}
	if maxVolumeCm3 != nil && *maxVolumeCm3 <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxVolumeCm3",
			fmt.Errorf("%v is not greater than 0", *maxVolumeCm3))
	}
	if maxOrders != nil && *maxOrders <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxOrders",
			fmt.Errorf("%d is not greater than 0", *maxOrders))
	}

	r.maxWeightKg = maxWeightKg
	r.maxVolumeCm3 = maxVolumeCm3
	r.maxOrders = maxOrders
	return nil
}
