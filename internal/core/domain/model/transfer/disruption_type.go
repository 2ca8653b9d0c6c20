package transfer

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// DisruptionType classifies why a transfer route was taken out of service.
type DisruptionType int

const (
	// UnknownDisruption represents an invalid or undefined type.
	UnknownDisruption DisruptionType = iota

	// RoadBlocked covers physical obstructions: accidents, floods, landslides.
	RoadBlocked

	// PolicyChange covers administrative closures.
	PolicyChange

	// Emergency covers natural disasters and other urgent events.
	Emergency

	// Maintenance covers planned downtime.
	Maintenance

	// Other covers everything else; the reason text carries the detail.
	Other
)

func getDisruptionTypeStrings() map[DisruptionType]string {
	return map[DisruptionType]string{
		UnknownDisruption: "Unknown",
		RoadBlocked:       "RoadBlocked",
		PolicyChange:      "PolicyChange",
		Emergency:         "Emergency",
		Maintenance:       "Maintenance",
		Other:             "Other",
	}
}

// Validate checks if the DisruptionType value is a defined, non-zero type.
func (t DisruptionType) Validate() error {
	if t == UnknownDisruption {
		return errs.NewValueIsInvalidErrorWithCause("disruptionType is invalid",
			fmt.Errorf("%d is not a valid disruption type", t))
	}
	if _, ok := getDisruptionTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("disruptionType is invalid",
			fmt.Errorf("%d is not a valid disruption type", t))
	}
	return nil
}

// String returns the human-readable name of the disruption type.
func (t DisruptionType) String() string {
	if str, ok := getDisruptionTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
