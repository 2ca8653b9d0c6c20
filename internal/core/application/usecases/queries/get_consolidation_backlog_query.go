package queries

import (
	"errors"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var (
	ErrGetConsolidationBacklogQueryIsNotConstructed = errors.New(
		"GetConsolidationBacklogQuery must be created via NewGetConsolidationBacklogQuery constructor",
	)
)

// GetConsolidationBacklogQuery retrieves the pending workload of every
// active consolidation route: how many parcels wait, how much they weigh,
// and how long the oldest has been waiting.
type GetConsolidationBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetConsolidationBacklogQuery creates a backlog query.
// This is a parameterless query over all active routes.
func NewGetConsolidationBacklogQuery() GetConsolidationBacklogQuery {
	return GetConsolidationBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetConsolidationBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetConsolidationBacklogQueryIsNotConstructed)
}

// GetConsolidationBacklogQueryResponse represents the backlog of one route.
type GetConsolidationBacklogQueryResponse struct {
	RouteID         kernel.UUID
	RouteName       string
	ProvinceCode    string
	PendingOrders   int
	PendingWeightKg float64
	OldestPendingAt *time.Time
}
