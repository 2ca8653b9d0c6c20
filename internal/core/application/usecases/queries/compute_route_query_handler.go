package queries

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComputeRouteQueryHandler loads the postal network from the database and
// runs the route planner over it.
//
// The handler rebuilds domain aggregates instead of returning raw rows
// because route planning is a domain computation: the planner owns the leg
// ordering, the hub graph search, and the processing delay rules.
type ComputeRouteQueryHandler struct {
	db      *gorm.DB
	planner services.RoutePlanner
}

// NewComputeRouteQueryHandler creates a handler for route computation queries.
func NewComputeRouteQueryHandler(db *gorm.DB) ComputeRouteQueryHandler {
	return ComputeRouteQueryHandler{
		db:      db,
		planner: services.NewRoutePlanner(),
	}
}

// Handle loads every office and active transfer route, builds the search
// network, and computes the stop list.
func (h ComputeRouteQueryHandler) Handle(
	ctx context.Context,
	query ComputeRouteQuery,
) (ComputeRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ComputeRouteQueryResponse{}, err
	}

	offices, err := h.loadOffices(ctx)
	if err != nil {
		return ComputeRouteQueryResponse{}, err
	}

	routes, err := h.loadActiveRoutes(ctx)
	if err != nil {
		return ComputeRouteQueryResponse{}, err
	}

	network := services.NewNetwork(offices, routes)
	if err = h.registerConsolidationWards(ctx, network); err != nil {
		return ComputeRouteQueryResponse{}, err
	}

	plan, err := h.planner.ComputeRoute(network, query.OriginOfficeID(), query.DestinationWardCode())
	if err != nil {
		return ComputeRouteQueryResponse{}, err
	}

	resp := ComputeRouteQueryResponse{
		Stops:           make([]ComputeRouteQueryStop, 0, len(plan.Stops)),
		TotalStops:      plan.TotalStops,
		EstimatedHours:  plan.EstimatedHours,
		TotalDistanceKm: plan.TotalDistanceKm,
		SameRegion:      plan.SameRegion,
		SameProvince:    plan.SameProvince,
	}
	for _, stop := range plan.Stops {
		resp.Stops = append(resp.Stops, ComputeRouteQueryStop{
			OfficeID:       stop.OfficeID,
			OfficeName:     stop.OfficeName,
			OfficeType:     stop.OfficeType.String(),
			StopOrder:      stop.StopOrder,
			HoursFromStart: stop.HoursFromStart,
		})
	}

	return resp, nil
}

// registerConsolidationWards anchors wards that appear on consolidation
// route stop lists but have no office of their own, so parcels addressed to
// them still route to the province warehouse.
func (h ComputeRouteQueryHandler) registerConsolidationWards(
	ctx context.Context,
	network *services.Network,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT s.ward_code, r.province_code
		FROM consolidation_route_stops s
		JOIN consolidation_routes r ON r.id = s.route_id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var wardCode, provinceCode string
		if err = rows.Scan(&wardCode, &provinceCode); err != nil {
			return err
		}

		ward, wardErr := kernel.NewWardCode(wardCode)
		province, provinceErr := kernel.NewProvinceCode(provinceCode)
		if wardErr != nil || provinceErr != nil {
			continue
		}
		network.RegisterWard(ward, province)
	}

	return rows.Err()
}

func (h ComputeRouteQueryHandler) loadOffices(ctx context.Context) ([]*office.Office, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			office_type,
			region_id,
			province_code,
			ward_code,
			parent_id,
			is_active
		FROM offices
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offices []*office.Office
	for rows.Next() {
		var (
			id           uuid.UUID
			name         string
			officeType   int
			regionID     int
			provinceCode *string
			wardCode     *string
			parentID     uuid.NullUUID
			isActive     bool
		)

		if err = rows.Scan(&id, &name, &officeType, &regionID,
			&provinceCode, &wardCode, &parentID, &isActive); err != nil {
			return nil, err
		}

		restored, restoreErr := restoreOffice(
			id, name, officeType, regionID, provinceCode, wardCode, parentID, isActive)
		if restoreErr != nil {
			return nil, restoreErr
		}
		offices = append(offices, restored)
	}

	return offices, rows.Err()
}

func restoreOffice(
	id uuid.UUID,
	name string,
	officeType int,
	regionID int,
	provinceCode *string,
	wardCode *string,
	parentID uuid.NullUUID,
	isActive bool,
) (*office.Office, error) {
	officeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	region, err := kernel.NewRegionID(regionID)
	if err != nil {
		return nil, err
	}

	var province *kernel.ProvinceCode
	if provinceCode != nil {
		code, codeErr := kernel.NewProvinceCode(*provinceCode)
		if codeErr != nil {
			return nil, codeErr
		}
		province = &code
	}

	var ward *kernel.WardCode
	if wardCode != nil {
		code, codeErr := kernel.NewWardCode(*wardCode)
		if codeErr != nil {
			return nil, codeErr
		}
		ward = &code
	}

	parent, err := optionalUUID(parentID)
	if err != nil {
		return nil, err
	}

	return office.RestoreOffice(officeID, name, office.Type(officeType),
		region, province, ward, parent, isActive)
}

func (h ComputeRouteQueryHandler) loadActiveRoutes(ctx context.Context) ([]*transfer.Route, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_hub_id,
			to_hub_id,
			distance_km,
			transit_hours,
			priority
		FROM transfer_routes
		WHERE is_active = true
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*transfer.Route
	for rows.Next() {
		var (
			id           uuid.UUID
			fromHubID    uuid.UUID
			toHubID      uuid.UUID
			distanceKm   float64
			transitHours float64
			priority     int
		)

		if err = rows.Scan(&id, &fromHubID, &toHubID,
			&distanceKm, &transitHours, &priority); err != nil {
			return nil, err
		}

		routeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		fromID, idErr := kernel.UUIDFromBytes(fromHubID[:])
		if idErr != nil {
			return nil, idErr
		}
		toID, idErr := kernel.UUIDFromBytes(toHubID[:])
		if idErr != nil {
			return nil, idErr
		}

		route, restoreErr := transfer.RestoreRoute(routeID, fromID, toID,
			distanceKm, transitHours, priority, true)
		if restoreErr != nil {
			return nil, restoreErr
		}
		routes = append(routes, route)
	}

	return routes, rows.Err()
}
