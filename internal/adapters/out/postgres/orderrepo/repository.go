package orderrepo

import (
	"context"
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
	"postal/internal/core/ports"
	"postal/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. Uses Select("*") so that
// cleared nullable columns (a detached batch, for one) are written back.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("orderId", gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingByConsolidationRoute retrieves the orders assigned to a route
// that have not reached the province warehouse yet.
func (r *GormOrderRepository) GetAllPendingByConsolidationRoute(
	ctx context.Context, routeID kernel.UUID,
) ([]*order.Order, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "consolidation_route_id = ? AND status = ?",
			routeID.Bytes(), int(order.AtOriginOffice)).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllByBatch retrieves every order belonging to a batch.
func (r *GormOrderRepository) GetAllByBatch(ctx context.Context, batchID kernel.UUID) ([]*order.Order, error) {
	if err := batchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "batch_id = ?", batchID.Bytes()).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllBatchableAtOffice retrieves the unbatched orders sitting at an office
// and addressed to the given destination office.
func (r *GormOrderRepository) GetAllBatchableAtOffice(
	ctx context.Context, officeID, destinationOfficeID kernel.UUID,
) ([]*order.Order, error) {
	if err := officeID.Validate(); err != nil {
		return nil, err
	}
	if err := destinationOfficeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "current_office_id = ? AND destination_office_id = ? AND batch_id IS NULL AND status IN ?",
			officeID.Bytes(), destinationOfficeID.Bytes(),
			[]int{int(order.AtOriginOffice), int(order.AtProvinceWarehouse)}).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetBatchableOfficePairs retrieves the distinct office pairs with unbatched
// orders waiting to be packed.
func (r *GormOrderRepository) GetBatchableOfficePairs(ctx context.Context) ([]ports.BatchableOfficePair, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Distinct("current_office_id", "destination_office_id").
		Where("batch_id IS NULL AND status IN ?",
			[]int{int(order.AtOriginOffice), int(order.AtProvinceWarehouse)}).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []ports.BatchableOfficePair
	for rows.Next() {
		var officeID, destinationID uuid.UUID
		if err = rows.Scan(&officeID, &destinationID); err != nil {
			return nil, err
		}

		office, officeErr := kernel.UUIDFromBytes(officeID[:])
		if officeErr != nil {
			return nil, officeErr
		}
		destination, destErr := kernel.UUIDFromBytes(destinationID[:])
		if destErr != nil {
			return nil, destErr
		}

		pairs = append(pairs, ports.BatchableOfficePair{
			OfficeID:            office,
			DestinationOfficeID: destination,
		})
	}

	return pairs, rows.Err()
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
