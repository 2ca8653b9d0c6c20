package queries

import (
	"errors"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var (
	ErrGetActiveDisruptionsQueryIsNotConstructed = errors.New(
		"GetActiveDisruptionsQuery must be created via NewGetActiveDisruptionsQuery constructor",
	)
)

// GetActiveDisruptionsQuery retrieves every disruption currently open
// across the transfer network, newest first. Used by the operations board.
type GetActiveDisruptionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDisruptionsQuery creates a query to retrieve open disruptions.
// This is a parameterless query.
func NewGetActiveDisruptionsQuery() GetActiveDisruptionsQuery {
	return GetActiveDisruptionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDisruptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDisruptionsQueryIsNotConstructed)
}

// GetActiveDisruptionsQueryResponse represents one open disruption together
// with the hubs of the route it blocks.
type GetActiveDisruptionsQueryResponse struct {
	ID                 kernel.UUID
	RouteID            kernel.UUID
	FromHubName        string
	ToHubName          string
	DisruptionType     string
	Reason             string
	StartTime          time.Time
	ExpectedEndTime    *time.Time
	AffectedBatchCount int
	AffectedOrderCount int
}
