package batch

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// Status represents the lifecycle state of a batch. It implements a state
// machine with an explicit transition table.
//
// Lifecycle:
//
//	Open -> Processing -> Sealed -> InTransit -> Arrived -> Distributed
//
// Cancellation is allowed until the batch departs. Distributed and
// Cancelled are terminal.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Open is the initial status of an empty batch.
	Open

	// Processing indicates the batch holds at least one order and is still
	// open for modification.
	Processing

	// Sealed indicates the batch content is frozen and ready to depart.
	Sealed

	// InTransit indicates the batch left its origin office.
	InTransit

	// Arrived indicates the batch reached its destination office.
	Arrived

	// Distributed is the successful terminal status: all orders were handed
	// over for final delivery.
	Distributed

	// Cancelled is the unsuccessful terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Open:          "Open",
		Processing:    "Processing",
		Sealed:        "Sealed",
		InTransit:     "InTransit",
		Arrived:       "Arrived",
		Distributed:   "Distributed",
		Cancelled:     "Cancelled",
	}
}

// allowedTransitions is the single source of truth for the batch state
// machine. A status missing from the map is terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Open:       {Processing, Sealed, Cancelled},
		Processing: {Sealed, Cancelled},
		Sealed:     {InTransit, Cancelled},
		InTransit:  {Arrived},
		Arrived:    {Distributed},
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
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsModifiable reports whether orders may still be added or removed.
func (s Status) IsModifiable() bool {
	return s == Open || s == Processing
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Distributed || s == Cancelled
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
