package queries

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/guard"
)

var (
	ErrComputeRouteQueryIsNotConstructed = errors.New(
		"ComputeRouteQuery must be created via NewComputeRouteQuery constructor",
	)
)

// ComputeRouteQuery requests the planned path of a parcel from an origin
// office to the office serving a destination ward.
//
// Example:
//
//	query, err := NewComputeRouteQuery(originOfficeID, wardCode)
//	if err != nil {
//	    return err
//	}
//
//	plan, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute route: %w", err)
//	}
//
//	fmt.Printf("%d stops, %.1f hours\n", plan.TotalStops, plan.EstimatedHours)
type ComputeRouteQuery struct {
	originOfficeID      kernel.UUID
	destinationWardCode kernel.WardCode

	guard guard.ConstructorGuard
}

// NewComputeRouteQuery creates a route computation query with validation.
func NewComputeRouteQuery(
	originOfficeID kernel.UUID,
	destinationWardCode kernel.WardCode,
) (ComputeRouteQuery, error) {
	if err := errors.Join(
		originOfficeID.Validate(),
		destinationWardCode.Validate(),
	); err != nil {
		return ComputeRouteQuery{}, err
	}

	return ComputeRouteQuery{
		originOfficeID:      originOfficeID,
		destinationWardCode: destinationWardCode,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// OriginOfficeID returns the office the parcel starts from.
func (q ComputeRouteQuery) OriginOfficeID() kernel.UUID {
	return q.originOfficeID
}

// DestinationWardCode returns the ward the parcel is addressed to.
func (q ComputeRouteQuery) DestinationWardCode() kernel.WardCode {
	return q.destinationWardCode
}

// Validate ensures the query was created through the constructor.
func (q ComputeRouteQuery) Validate() error {
	return q.guard.Validate(ErrComputeRouteQueryIsNotConstructed)
}

// ComputeRouteQueryStop is one stop of the computed route.
type ComputeRouteQueryStop struct {
	OfficeID       kernel.UUID
	OfficeName     string
	OfficeType     string
	StopOrder      int
	HoursFromStart float64
}

// ComputeRouteQueryResponse represents the full planned route of a parcel.
type ComputeRouteQueryResponse struct {
	Stops           []ComputeRouteQueryStop
	TotalStops      int
	EstimatedHours  float64
	TotalDistanceKm float64
	SameRegion      bool
	SameProvince    bool
}
