package order

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel as it moves through the
// postal network. It implements a state machine with an explicit transition
// table so every allowed move is visible in one place.
//
// Happy path:
//
//	Created -> AtOriginOffice -> AtProvinceWarehouse -> SortedAtOrigin
//	        -> InTransitToHub -> AtHub -> InTransitToDestination
//	        -> AtDestinationOffice -> OutForDelivery -> Delivered
//
// Orders released from a cancelled batch fall back to AtOriginOffice.
// Delivered and Cancelled are terminal.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Created is the initial status when a parcel is registered.
	Created

	// AtOriginOffice indicates the parcel was accepted at its origin
	// office and assigned to a consolidation route.
	AtOriginOffice

	// SortedAtOrigin indicates the parcel was sealed into an outbound batch.
	SortedAtOrigin

	// AtProvinceWarehouse indicates the parcel was consolidated to its
	// province warehouse and awaits inter-province batching.
	AtProvinceWarehouse

	// InTransitToHub indicates the parcel's batch departed toward a regional hub.
	InTransitToHub

	// AtHub indicates the parcel is being processed at a regional hub.
	AtHub

	// InTransitToDestination indicates the parcel left the last hub toward
	// its destination province.
	InTransitToDestination

	// AtDestinationOffice indicates the parcel arrived at its destination office.
	AtDestinationOffice

	// OutForDelivery indicates the parcel left the destination office with a carrier.
	OutForDelivery

	// Delivered is the successful terminal status.
	Delivered

	// DeliveryFailed indicates a delivery attempt failed; the parcel may go
	// out for delivery again or be cancelled.
	DeliveryFailed

	// Cancelled is the unsuccessful terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:          "Unknown",
		Created:                "Created",
		AtOriginOffice:         "AtOriginOffice",
		SortedAtOrigin:         "SortedAtOrigin",
		AtProvinceWarehouse:    "AtProvinceWarehouse",
		InTransitToHub:         "InTransitToHub",
		AtHub:                  "AtHub",
		InTransitToDestination: "InTransitToDestination",
		AtDestinationOffice:    "AtDestinationOffice",
		OutForDelivery:         "OutForDelivery",
		Delivered:              "Delivered",
		DeliveryFailed:         "DeliveryFailed",
		Cancelled:              "Cancelled",
	}
}

// allowedTransitions is the single source of truth for the order state
// machine. A status missing from the map is terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:                {AtOriginOffice, Cancelled},
		AtOriginOffice:         {SortedAtOrigin, AtProvinceWarehouse, Cancelled},
		AtProvinceWarehouse:    {SortedAtOrigin, AtOriginOffice, Cancelled},
		SortedAtOrigin:         {InTransitToHub, AtOriginOffice, Cancelled},
		InTransitToHub:         {AtHub, AtDestinationOffice},
		AtHub:                  {InTransitToDestination},
		InTransitToDestination: {AtDestinationOffice},
		AtDestinationOffice:    {OutForDelivery},
		OutForDelivery:         {Delivered, DeliveryFailed},
		DeliveryFailed:         {OutForDelivery, Cancelled},
	}
}

// Validate checks if the Status value is a defined, non-zero status.
func (s Status) Validate() error {
	if s == UnknownStatus {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the move is allowed by the
// transition table, or a validation error naming both states otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("transition from %s to %s is not allowed", s.String(), target.String()),
		)
	}
	return target, nil
}
