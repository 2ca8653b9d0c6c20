package queries

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var (
	ErrPreviewDisableImpactQueryIsNotConstructed = errors.New(
		"PreviewDisableImpactQuery must be created via NewPreviewDisableImpactQuery constructor",
	)
)

// PreviewDisableImpactQuery estimates the blast radius of disabling a
// transfer route before the operator commits to it.
type PreviewDisableImpactQuery struct {
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPreviewDisableImpactQuery creates an impact preview query with validation.
func NewPreviewDisableImpactQuery(routeID kernel.UUID) (PreviewDisableImpactQuery, error) {
	if err := routeID.Validate(); err != nil {
		return PreviewDisableImpactQuery{}, err
	}

	return PreviewDisableImpactQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RouteID returns the transfer route being evaluated.
func (q PreviewDisableImpactQuery) RouteID() kernel.UUID {
	return q.routeID
}

// Validate ensures the query was created through the constructor.
func (q PreviewDisableImpactQuery) Validate() error {
	return q.guard.Validate(ErrPreviewDisableImpactQueryIsNotConstructed)
}

// PreviewDisableImpactQueryResponse represents the estimated impact of
// disabling a transfer route.
//
// HasAlternativeRoute reports whether the origin hub keeps at least one
// other active outbound edge, a cheap signal that traffic can reroute
// without being stranded.
type PreviewDisableImpactQueryResponse struct {
	RouteID               kernel.UUID
	FromHubID             kernel.UUID
	ToHubID               kernel.UUID
	OutstandingBatchCount int
	OutstandingOrderCount int
	HasAlternativeRoute   bool
}
