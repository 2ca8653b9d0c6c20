package batchrepo

import (
	"context"
	"errors"
	"time"

	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch and its items to the database.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.Batch) error {
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

// Update saves an existing batch to the database. The item set is rewritten
// wholesale since additions and removals both reshape the manifest.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BatchDTO{}).
		Where("id = ?", dto.ID).
		Select("batch_code", "origin_office_id", "destination_office_id", "status",
			"max_weight_kg", "max_volume_cm3", "max_orders",
			"created_at", "sealed_at", "departed_at", "arrived_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("batchId", gorm.ErrRecordNotFound)
	}

	if err := r.db.WithContext(ctx).Delete(&BatchItemDTO{}, "batch_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch with its items by ID.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllModifiableByOfficePair retrieves the open batches between two offices.
func (r *GormBatchRepository) GetAllModifiableByOfficePair(
	ctx context.Context, originOfficeID, destinationOfficeID kernel.UUID,
) ([]*batch.Batch, error) {
	if err := originOfficeID.Validate(); err != nil {
		return nil, err
	}
	if err := destinationOfficeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BatchDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at").
		Find(&dtos, "origin_office_id = ? AND destination_office_id = ? AND status IN ?",
			originOfficeID.Bytes(), destinationOfficeID.Bytes(),
			[]int{int(batch.Open), int(batch.Processing)}).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllOutstandingBetweenRegions retrieves the sealed and in-transit batches
// whose origin office lies in one region and destination office in another.
func (r *GormBatchRepository) GetAllOutstandingBetweenRegions(
	ctx context.Context, fromRegionID, toRegionID kernel.RegionID,
) ([]*batch.Batch, error) {
	if err := fromRegionID.Validate(); err != nil {
		return nil, err
	}
	if err := toRegionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BatchDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Joins("JOIN offices AS origin ON origin.id = batches.origin_office_id").
		Joins("JOIN offices AS destination ON destination.id = batches.destination_office_id").
		Where("origin.region_id = ? AND destination.region_id = ? AND batches.status IN ?",
			fromRegionID.Int(), toRegionID.Int(),
			[]int{int(batch.Sealed), int(batch.InTransit)}).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllSealableOlderThan retrieves the open batches created before the
// cutoff holding at least minOrders orders.
func (r *GormBatchRepository) GetAllSealableOlderThan(
	ctx context.Context, cutoff time.Time, minOrders int,
) ([]*batch.Batch, error) {
	var dtos []BatchDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status IN ? AND created_at < ?",
			[]int{int(batch.Open), int(batch.Processing)}, cutoff).
		Where("(SELECT COUNT(*) FROM batch_items WHERE batch_items.batch_id = batches.id) >= ?", minOrders).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormBatchRepository) toDomainAll(dtos []BatchDTO) ([]*batch.Batch, error) {
	batches := make([]*batch.Batch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}
