package queries

import (
	"errors"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var (
	ErrGetRouteDisruptionHistoryQueryIsNotConstructed = errors.New(
		"GetRouteDisruptionHistoryQuery must be created via NewGetRouteDisruptionHistoryQuery constructor",
	)
)

// GetRouteDisruptionHistoryQuery retrieves the full disruption history of
// one transfer route, newest first.
type GetRouteDisruptionHistoryQuery struct {
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteDisruptionHistoryQuery creates a history query with validation.
func NewGetRouteDisruptionHistoryQuery(routeID kernel.UUID) (GetRouteDisruptionHistoryQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteDisruptionHistoryQuery{}, err
	}

	return GetRouteDisruptionHistoryQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RouteID returns the transfer route whose history is requested.
func (q GetRouteDisruptionHistoryQuery) RouteID() kernel.UUID {
	return q.routeID
}

// Validate ensures the query was created through the constructor.
func (q GetRouteDisruptionHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteDisruptionHistoryQueryIsNotConstructed)
}

// GetRouteDisruptionHistoryQueryResponse represents one past or present
// disruption of the route.
type GetRouteDisruptionHistoryQueryResponse struct {
	ID                 kernel.UUID
	DisruptionType     string
	Reason             string
	StartTime          time.Time
	ExpectedEndTime    *time.Time
	ActualEndTime      *time.Time
	AffectedBatchCount int
	AffectedOrderCount int
	IsActive           bool
}
