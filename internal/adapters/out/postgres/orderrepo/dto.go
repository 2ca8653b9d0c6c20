// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status, placement, and batch membership for the batching and
// consolidation sweeps.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber       string    `gorm:"uniqueIndex"`
	OriginOfficeID       uuid.UUID `gorm:"type:uuid"`
	CurrentOfficeID      uuid.UUID `gorm:"type:uuid;index"`
	DestinationOfficeID  uuid.UUID `gorm:"type:uuid;index"`
	DestinationWardCode  string
	ChargeableWeightKg   float64
	LengthCm             *float64
	WidthCm              *float64
	HeightCm             *float64
	Status               int        `gorm:"index"`
	ConsolidationRouteID *uuid.UUID `gorm:"type:uuid;index"`
	BatchID              *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt            time.Time
	ConsolidatedAt       *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var routeID, batchID *uuid.UUID
	if id := aggregate.ConsolidationRouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}
	if id := aggregate.BatchID(); id != nil {
		raw := id.Bytes()
		batchID = &raw
	}

	length, width, height := aggregate.Dimensions()

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		TrackingNumber:       aggregate.TrackingNumber(),
		OriginOfficeID:       aggregate.OriginOfficeID().Bytes(),
		CurrentOfficeID:      aggregate.CurrentOfficeID().Bytes(),
		DestinationOfficeID:  aggregate.DestinationOfficeID().Bytes(),
		DestinationWardCode:  aggregate.DestinationWardCode().String(),
		ChargeableWeightKg:   aggregate.ChargeableWeightKg(),
		LengthCm:             length,
		WidthCm:              width,
		HeightCm:             height,
		Status:               int(aggregate.Status()),
		ConsolidationRouteID: routeID,
		BatchID:              batchID,
		CreatedAt:            aggregate.CreatedAt(),
		ConsolidatedAt:       aggregate.ConsolidatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	originOfficeID, err := kernel.UUIDFromBytes(dto.OriginOfficeID[:])
	if err != nil {
		return nil, err
	}
	currentOfficeID, err := kernel.UUIDFromBytes(dto.CurrentOfficeID[:])
	if err != nil {
		return nil, err
	}
	destinationOfficeID, err := kernel.UUIDFromBytes(dto.DestinationOfficeID[:])
	if err != nil {
		return nil, err
	}

	wardCode, err := kernel.NewWardCode(dto.DestinationWardCode)
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.ConsolidationRouteID != nil {
		rID, routeErr := kernel.UUIDFromBytes((*dto.ConsolidationRouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}
		routeID = &rID
	}

	var batchID *kernel.UUID
	if dto.BatchID != nil {
		bID, batchErr := kernel.UUIDFromBytes((*dto.BatchID)[:])
		if batchErr != nil {
			return nil, batchErr
		}
		batchID = &bID
	}

	return order.RestoreOrder(
		id,
		dto.TrackingNumber,
		originOfficeID,
		currentOfficeID,
		destinationOfficeID,
		wardCode,
		dto.ChargeableWeightKg,
		dto.LengthCm, dto.WidthCm, dto.HeightCm,
		order.Status(dto.Status),
		routeID,
		batchID,
		dto.CreatedAt,
		dto.ConsolidatedAt,
	)
}
