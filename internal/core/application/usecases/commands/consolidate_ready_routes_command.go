package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var ErrConsolidateReadyRoutesCommandIsNotConstructed = errors.New(
	"ConsolidateReadyRoutesCommand must be created via NewConsolidateReadyRoutesCommand constructor",
)

// ConsolidateReadyRoutesCommand represents a request to sweep the active
// consolidation routes and run the ones whose readiness rule fires. The
// sweep covers every province unless scoped to one.
type ConsolidateReadyRoutesCommand struct { //nolint:recvcheck //using for validation
	provinceCode *kernel.ProvinceCode

	guard guard.ConstructorGuard
}

// NewConsolidateReadyRoutesCommand creates a sweep command over all provinces.
func NewConsolidateReadyRoutesCommand() (ConsolidateReadyRoutesCommand, error) {
	return ConsolidateReadyRoutesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewConsolidateReadyRoutesByProvinceCommand creates a sweep command scoped
// to the active routes of one province.
func NewConsolidateReadyRoutesByProvinceCommand(
	provinceCode kernel.ProvinceCode,
) (ConsolidateReadyRoutesCommand, error) {
	if err := provinceCode.Validate(); err != nil {
		return ConsolidateReadyRoutesCommand{}, err
	}

	return ConsolidateReadyRoutesCommand{
		provinceCode: &provinceCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// ProvinceCode returns the province the sweep is scoped to, nil for all.
func (c ConsolidateReadyRoutesCommand) ProvinceCode() *kernel.ProvinceCode {
	return c.provinceCode
}

// Validate ensures the command was created through the constructor.
func (c ConsolidateReadyRoutesCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateReadyRoutesCommandIsNotConstructed)
}

// ConsolidationFailure records one route the sweep could not consolidate.
type ConsolidationFailure struct {
	RouteID kernel.UUID
	Err     error
}

// ConsolidateReadyRoutesResult summarizes one sweep over the active routes.
// Per-route failures are data, not control flow: the sweep continues past
// them and reports them here.
type ConsolidateReadyRoutesResult struct {
	RoutesChecked      int
	RoutesConsolidated int
	OrdersConsolidated int
	Failures           []ConsolidationFailure
}
