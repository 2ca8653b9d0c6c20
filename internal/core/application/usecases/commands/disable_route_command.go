package commands

import (
	"errors"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var (
	ErrDisableRouteCommandIsNotConstructed = errors.New(
		"DisableRouteCommand must be created via NewDisableRouteCommand constructor",
	)
	ErrDisruptionReasonIsRequired = errors.New("disruption reason is required")
)

// DisableRouteCommand represents a request to take one direction of a hub
// connection out of service and open a disruption record for it. The
// opposite direction stays in service unless disabled separately.
type DisableRouteCommand struct { //nolint:recvcheck //using for validation
	routeID         kernel.UUID
	disruptionType  transfer.DisruptionType
	reason          string
	expectedEndTime *time.Time

	guard guard.ConstructorGuard
}

// NewDisableRouteCommand creates a command to disable a transfer route.
func NewDisableRouteCommand(
	routeID kernel.UUID,
	disruptionType transfer.DisruptionType,
	reason string,
	expectedEndTime *time.Time,
) (DisableRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return DisableRouteCommand{}, err
	}
	if err := disruptionType.Validate(); err != nil {
		return DisableRouteCommand{}, err
	}
	if reason == "" {
		return DisableRouteCommand{}, ErrDisruptionReasonIsRequired
	}
	if expectedEndTime != nil && !expectedEndTime.After(time.Now()) {
		return DisableRouteCommand{}, errs.NewValueIsInvalidError("expectedEndTime")
	}

	return DisableRouteCommand{
		routeID:         routeID,
		disruptionType:  disruptionType,
		reason:          reason,
		expectedEndTime: expectedEndTime,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DisableRouteCommand) Validate() error {
	return c.guard.Validate(ErrDisableRouteCommandIsNotConstructed)
}

// RouteID returns the route to disable.
func (c DisableRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// DisruptionType returns the kind of disruption.
func (c DisableRouteCommand) DisruptionType() transfer.DisruptionType {
	return c.disruptionType
}

// Reason returns the operator-supplied explanation.
func (c DisableRouteCommand) Reason() string {
	return c.reason
}

// ExpectedEndTime returns the forecast end of the disruption, nil if unknown.
func (c DisableRouteCommand) ExpectedEndTime() *time.Time {
	return c.expectedEndTime
}
