package consolidationrepo

import (
	"context"
	"errors"

	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConsolidationRouteRepository implements ConsolidationRouteRepository using GORM.
type GormConsolidationRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConsolidationRouteRepository creates a new GORM consolidation route repository.
func NewGormConsolidationRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormConsolidationRouteRepository {
	return &GormConsolidationRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new consolidation route and its stops to the database.
func (r *GormConsolidationRouteRepository) Add(ctx context.Context, aggregate *consolidation.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing consolidation route to the database. Stops are
// rewritten as a set.
func (r *GormConsolidationRouteRepository) Update(ctx context.Context, aggregate *consolidation.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "province_code", "destination_warehouse_id",
			"max_weight_kg", "max_volume_cm3", "max_orders",
			"is_active", "total_consolidated_orders", "last_consolidation_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("routeId", gorm.ErrRecordNotFound)
	}

	if err := r.db.WithContext(ctx).Delete(&RouteStopDTO{}, "route_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Stops) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Stops).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a consolidation route with its stops by ID.
func (r *GormConsolidationRouteRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.db.WithContext(ctx).Preload("Stops").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consolidationRoute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a consolidation route and its stops.
func (r *GormConsolidationRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&RouteStopDTO{}, "route_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RouteDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consolidationRoute", id.String())
	}

	return nil
}

// GetAllActive retrieves every active consolidation route.
func (r *GormConsolidationRouteRepository) GetAllActive(ctx context.Context) ([]*consolidation.Route, error) {
	var dtos []RouteDTO
	err := r.db.WithContext(ctx).Preload("Stops").
		Order("created_at").
		Find(&dtos, "is_active = ?", true).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllActiveByProvince retrieves the active consolidation routes of one
// province in creation order.
func (r *GormConsolidationRouteRepository) GetAllActiveByProvince(
	ctx context.Context, provinceCode kernel.ProvinceCode,
) ([]*consolidation.Route, error) {
	var dtos []RouteDTO
	err := r.db.WithContext(ctx).Preload("Stops").
		Order("created_at").
		Find(&dtos, "province_code = ? AND is_active = ?", provinceCode.String(), true).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormConsolidationRouteRepository) toDomainAll(dtos []RouteDTO) ([]*consolidation.Route, error) {
	routes := make([]*consolidation.Route, 0, len(dtos))
	for _, dto := range dtos {
		route, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, nil
}
