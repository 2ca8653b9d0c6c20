package transferrepo

import (
	"context"
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormTransferRouteRepository implements TransferRouteRepository using GORM.
type GormTransferRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTransferRouteRepository creates a new GORM transfer route repository.
func NewGormTransferRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormTransferRouteRepository {
	return &GormTransferRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transfer route to the database.
func (r *GormTransferRouteRepository) Add(ctx context.Context, aggregate *transfer.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := routeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing transfer route to the database.
func (r *GormTransferRouteRepository) Update(ctx context.Context, aggregate *transfer.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := routeFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("routeId", gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transfer route by ID.
func (r *GormTransferRouteRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transferRoute", id.String())
		}
		return nil, err
	}

	return routeToDomain(dto)
}

// GetByHubPair retrieves the directed route between two hubs.
func (r *GormTransferRouteRepository) GetByHubPair(
	ctx context.Context, fromHubID, toHubID kernel.UUID,
) (*transfer.Route, error) {
	if err := fromHubID.Validate(); err != nil {
		return nil, err
	}
	if err := toHubID.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.db.WithContext(ctx).
		First(&dto, "from_hub_id = ? AND to_hub_id = ?", fromHubID.Bytes(), toHubID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transferRoute",
				fromHubID.String()+" -> "+toHubID.String())
		}
		return nil, err
	}

	return routeToDomain(dto)
}

// GetAllActive retrieves every active transfer route.
func (r *GormTransferRouteRepository) GetAllActive(ctx context.Context) ([]*transfer.Route, error) {
	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Order("priority").
		Find(&dtos, "is_active = ?", true).Error
	if err != nil {
		return nil, err
	}

	routes := make([]*transfer.Route, 0, len(dtos))
	for _, dto := range dtos {
		route, routeErr := routeToDomain(dto)
		if routeErr != nil {
			return nil, routeErr
		}
		routes = append(routes, route)
	}

	return routes, nil
}

// GormDisruptionRepository implements DisruptionRepository using GORM.
type GormDisruptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDisruptionRepository creates a new GORM disruption repository.
func NewGormDisruptionRepository(db *gorm.DB, tracker aggregateTracker) *GormDisruptionRepository {
	return &GormDisruptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new disruption to the database.
func (r *GormDisruptionRepository) Add(ctx context.Context, aggregate *transfer.Disruption) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := disruptionFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing disruption to the database.
func (r *GormDisruptionRepository) Update(ctx context.Context, aggregate *transfer.Disruption) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := disruptionFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DisruptionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("disruptionId", gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a disruption by ID.
func (r *GormDisruptionRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Disruption, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DisruptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("disruption", id.String())
		}
		return nil, err
	}

	return disruptionToDomain(dto)
}

// GetActiveByRoute retrieves the active disruption of a route, if any.
func (r *GormDisruptionRepository) GetActiveByRoute(
	ctx context.Context, routeID kernel.UUID,
) (*transfer.Disruption, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dto DisruptionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "route_id = ? AND is_active = ?", routeID.Bytes(), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("disruption", routeID.String())
		}
		return nil, err
	}

	return disruptionToDomain(dto)
}

// GetAllActive retrieves every active disruption across the network.
func (r *GormDisruptionRepository) GetAllActive(ctx context.Context) ([]*transfer.Disruption, error) {
	var dtos []DisruptionDTO
	err := r.db.WithContext(ctx).
		Order("start_time DESC").
		Find(&dtos, "is_active = ?", true).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllByRoute retrieves the full disruption history of a route, newest first.
func (r *GormDisruptionRepository) GetAllByRoute(
	ctx context.Context, routeID kernel.UUID,
) ([]*transfer.Disruption, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DisruptionDTO
	err := r.db.WithContext(ctx).
		Order("start_time DESC").
		Find(&dtos, "route_id = ?", routeID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormDisruptionRepository) toDomainAll(dtos []DisruptionDTO) ([]*transfer.Disruption, error) {
	disruptions := make([]*transfer.Disruption, 0, len(dtos))
	for _, dto := range dtos {
		d, err := disruptionToDomain(dto)
		if err != nil {
			return nil, err
		}
		disruptions = append(disruptions, d)
	}
	return disruptions, nil
}
