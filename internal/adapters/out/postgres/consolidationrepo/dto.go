// Package consolidationrepo provides data transfer objects and mapping
// functions for consolidation route persistence. Ward stops live in their own
// table so the serving relation can be queried without unpacking the route.
package consolidationrepo

import (
	"sort"
	"time"

	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting consolidation routes.
type RouteDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                    string
	ProvinceCode            string    `gorm:"index"`
	DestinationWarehouseID  uuid.UUID `gorm:"type:uuid"`
	MaxWeightKg             *float64
	MaxVolumeCm3            *float64
	MaxOrders               *int
	IsActive                bool `gorm:"index"`
	TotalConsolidatedOrders int
	LastConsolidationAt     *time.Time
	CreatedAt               time.Time

	Stops []RouteStopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for consolidation routes.
func (RouteDTO) TableName() string {
	return "consolidation_routes"
}

// RouteStopDTO represents one ward stop on a consolidation route.
type RouteStopDTO struct {
	RouteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	WardCode  string    `gorm:"primaryKey"`
	SortOrder int
}

// TableName specifies the database table name for route stops.
func (RouteStopDTO) TableName() string {
	return "consolidation_route_stops"
}

func fromDomain(aggregate *consolidation.Route) RouteDTO {
	wardCodes := aggregate.WardCodes()
	stops := make([]RouteStopDTO, 0, len(wardCodes))
	for i, ward := range wardCodes {
		stops = append(stops, RouteStopDTO{
			RouteID:   aggregate.ID().Bytes(),
			WardCode:  ward.String(),
			SortOrder: i,
		})
	}

	return RouteDTO{
		ID:                      aggregate.ID().Bytes(),
		Name:                    aggregate.Name(),
		ProvinceCode:            aggregate.ProvinceCode().String(),
		DestinationWarehouseID:  aggregate.DestinationWarehouseID().Bytes(),
		MaxWeightKg:             aggregate.MaxWeightKg(),
		MaxVolumeCm3:            aggregate.MaxVolumeCm3(),
		MaxOrders:               aggregate.MaxOrders(),
		IsActive:                aggregate.IsActive(),
		TotalConsolidatedOrders: aggregate.TotalConsolidatedOrders(),
		LastConsolidationAt:     aggregate.LastConsolidationAt(),
		Stops:                   stops,
	}
}

func toDomain(dto RouteDTO) (*consolidation.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.DestinationWarehouseID[:])
	if err != nil {
		return nil, err
	}
	provinceCode, err := kernel.NewProvinceCode(dto.ProvinceCode)
	if err != nil {
		return nil, err
	}

	stops := make([]RouteStopDTO, len(dto.Stops))
	copy(stops, dto.Stops)
	sort.Slice(stops, func(i, j int) bool { return stops[i].SortOrder < stops[j].SortOrder })

	wardCodes := make([]kernel.WardCode, 0, len(stops))
	for _, stop := range stops {
		ward, wardErr := kernel.NewWardCode(stop.WardCode)
		if wardErr != nil {
			return nil, wardErr
		}
		wardCodes = append(wardCodes, ward)
	}

	return consolidation.RestoreRoute(
		id,
		dto.Name,
		provinceCode,
		warehouseID,
		wardCodes,
		dto.MaxWeightKg,
		dto.MaxVolumeCm3,
		dto.MaxOrders,
		dto.IsActive,
		dto.TotalConsolidatedOrders,
		dto.LastConsolidationAt,
	)
}
