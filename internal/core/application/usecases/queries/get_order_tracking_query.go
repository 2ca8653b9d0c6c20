// Package queries contains read-only operations for the query side of the
// CQRS architecture. Query handlers read the database directly with raw SQL
// and return lightweight response structs, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
	"postal/internal/pkg/guard"
)

var (
	ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
		"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
	)
)

// GetOrderTrackingQuery retrieves the current placement and status of a
// parcel by its public tracking number.
type GetOrderTrackingQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a tracking query with validation.
func NewGetOrderTrackingQuery(trackingNumber string) (GetOrderTrackingQuery, error) {
	if trackingNumber == "" {
		return GetOrderTrackingQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return GetOrderTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// TrackingNumber returns the tracking number being looked up.
func (q GetOrderTrackingQuery) TrackingNumber() string {
	return q.trackingNumber
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// GetOrderTrackingQueryResponse represents the tracking view of one parcel.
type GetOrderTrackingQueryResponse struct {
	ID                   kernel.UUID
	TrackingNumber       string
	Status               string
	OriginOfficeID       kernel.UUID
	CurrentOfficeID      kernel.UUID
	DestinationOfficeID  kernel.UUID
	DestinationWardCode  string
	ChargeableWeightKg   float64
	ConsolidationRouteID *kernel.UUID
	BatchID              *kernel.UUID
	CreatedAt            time.Time
	ConsolidatedAt       *time.Time
}
