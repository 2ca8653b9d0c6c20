package transfer

import (
	"errors"
	"fmt"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not created
	// through the NewRoute or RestoreRoute factory methods.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

	// ErrRouteAlreadyDisabled is returned when disabling a route that is
	// already out of service.
	ErrRouteAlreadyDisabled = errors.New("transfer route is already disabled")

	// ErrRouteAlreadyActive is returned when enabling a route that is
	// already in service.
	ErrRouteAlreadyActive = errors.New("transfer route is already active")
)

// Route represents a directed transfer edge between two regional hubs.
//
// Routes are directional: the A to B edge and the B to A edge are separate
// records and are disabled independently. Route creation produces both
// directions, but a disruption on one leaves the reverse in service.
type Route struct {
	id        kernel.UUID
	fromHubID kernel.UUID
	toHubID   kernel.UUID

	distanceKm   float64
	transitHours float64

	// priority orders neighbor expansion during path finding. Lower is
	// preferred; defaults to 1.
	priority int

	isActive      bool
	isConstructed bool
}

// NewRoute creates a new active Route between two distinct hubs.
func NewRoute(
	id kernel.UUID,
	fromHubID kernel.UUID,
	toHubID kernel.UUID,
	distanceKm float64,
	transitHours float64,
	priority int,
) (*Route, error) {
	r := &Route{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setHubs(fromHubID, toHubID),
		r.setMetrics(distanceKm, transitHours),
		r.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route from persistence.
func RestoreRoute(
	id kernel.UUID,
	fromHubID kernel.UUID,
	toHubID kernel.UUID,
	distanceKm float64,
	transitHours float64,
	priority int,
	isActive bool,
) (*Route, error) {
	r, err := NewRoute(id, fromHubID, toHubID, distanceKm, transitHours, priority)
	if err != nil {
		return nil, err
	}

	r.isActive = isActive
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

// FromHubID returns the hub the edge departs from.
func (r *Route) FromHubID() kernel.UUID {
	return r.fromHubID
}

// ToHubID returns the hub the edge arrives at.
func (r *Route) ToHubID() kernel.UUID {
	return r.toHubID
}

// DistanceKm returns the edge length in kilometers.
func (r *Route) DistanceKm() float64 {
	return r.distanceKm
}

// TransitHours returns the travel time over the edge in hours.
func (r *Route) TransitHours() float64 {
	return r.transitHours
}

// Priority returns the neighbor-expansion priority. Lower is preferred.
func (r *Route) Priority() int {
	return r.priority
}

// IsActive reports whether the edge participates in path finding.
func (r *Route) IsActive() bool {
	return r.isActive
}

// Connects reports whether the edge runs between the two hubs in the given direction.
func (r *Route) Connects(fromHubID, toHubID kernel.UUID) bool {
	return r.fromHubID.IsEqual(fromHubID) && r.toHubID.IsEqual(toHubID)
}

// Touches reports whether the edge starts or ends at the given hub.
func (r *Route) Touches(hubID kernel.UUID) bool {
	return r.fromHubID.IsEqual(hubID) || r.toHubID.IsEqual(hubID)
}

// Disable takes the edge out of service. The reverse edge is unaffected.
func (r *Route) Disable() error {
	if !r.isActive {
		return ErrRouteAlreadyDisabled
	}

	r.isActive = false
	return nil
}

// Enable returns the edge to service.
func (r *Route) Enable() error {
	if r.isActive {
		return ErrRouteAlreadyActive
	}

	r.isActive = true
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setHubs(fromHubID, toHubID kernel.UUID) error {
	if err := fromHubID.Validate(); err != nil {
		return err
	}
	if err := toHubID.Validate(); err != nil {
		return err
	}
	if fromHubID.IsEqual(toHubID) {
		return errs.NewValueIsInvalidError("a transfer route must connect two distinct hubs")
	}

	r.fromHubID = fromHubID
	r.toHubID = toHubID
	return nil
}

func (r *Route) setMetrics(distanceKm, transitHours float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%v is not greater than 0", distanceKm))
	}
	if transitHours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("transitHours",
			fmt.Errorf("%v is not greater than 0", transitHours))
	}

	r.distanceKm = distanceKm
	r.transitHours = transitHours
	return nil
}

func (r *Route) setPriority(priority int) error {
	if priority < 1 {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not greater than or equal to 1", priority))
	}
	r.priority = priority
	return nil
}
