// Package transferrepo provides data transfer objects and mapping functions
// for hub-to-hub transfer routes and their disruption records.
package transferrepo

import (
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/transfer"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting transfer routes.
type RouteDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FromHubID    uuid.UUID `gorm:"type:uuid;index:idx_transfer_routes_pair"`
	ToHubID      uuid.UUID `gorm:"type:uuid;index:idx_transfer_routes_pair"`
	DistanceKm   float64
	TransitHours float64
	Priority     int
	IsActive     bool `gorm:"index"`
}

// TableName specifies the database table name for transfer routes.
func (RouteDTO) TableName() string {
	return "transfer_routes"
}

// DisruptionDTO represents the database structure for persisting disruptions.
type DisruptionDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID            uuid.UUID `gorm:"type:uuid;index"`
	DisruptionType     int
	Reason             string
	StartTime          time.Time
	ExpectedEndTime    *time.Time
	ActualEndTime      *time.Time
	AffectedBatchCount int
	AffectedOrderCount int
	IsActive           bool `gorm:"index"`
}

// TableName specifies the database table name for disruptions.
func (DisruptionDTO) TableName() string {
	return "disruptions"
}

func routeFromDomain(aggregate *transfer.Route) RouteDTO {
	return RouteDTO{
		ID:           aggregate.ID().Bytes(),
		FromHubID:    aggregate.FromHubID().Bytes(),
		ToHubID:      aggregate.ToHubID().Bytes(),
		DistanceKm:   aggregate.DistanceKm(),
		TransitHours: aggregate.TransitHours(),
		Priority:     aggregate.Priority(),
		IsActive:     aggregate.IsActive(),
	}
}

func routeToDomain(dto RouteDTO) (*transfer.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	fromHubID, err := kernel.UUIDFromBytes(dto.FromHubID[:])
	if err != nil {
		return nil, err
	}
	toHubID, err := kernel.UUIDFromBytes(dto.ToHubID[:])
	if err != nil {
		return nil, err
	}

	return transfer.RestoreRoute(id, fromHubID, toHubID,
		dto.DistanceKm, dto.TransitHours, dto.Priority, dto.IsActive)
}

func disruptionFromDomain(aggregate *transfer.Disruption) DisruptionDTO {
	return DisruptionDTO{
		ID:                 aggregate.ID().Bytes(),
		RouteID:            aggregate.RouteID().Bytes(),
		DisruptionType:     int(aggregate.Type()),
		Reason:             aggregate.Reason(),
		StartTime:          aggregate.StartTime(),
		ExpectedEndTime:    aggregate.ExpectedEndTime(),
		ActualEndTime:      aggregate.ActualEndTime(),
		AffectedBatchCount: aggregate.AffectedBatchCount(),
		AffectedOrderCount: aggregate.AffectedOrderCount(),
		IsActive:           aggregate.IsActive(),
	}
}

func disruptionToDomain(dto DisruptionDTO) (*transfer.Disruption, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	return transfer.RestoreDisruption(
		id,
		routeID,
		transfer.DisruptionType(dto.DisruptionType),
		dto.Reason,
		dto.StartTime,
		dto.ExpectedEndTime,
		dto.ActualEndTime,
		dto.AffectedBatchCount,
		dto.AffectedOrderCount,
		dto.IsActive,
	)
}
