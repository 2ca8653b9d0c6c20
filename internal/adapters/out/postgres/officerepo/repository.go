package officerepo

import (
	"context"
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfficeRepository implements OfficeRepository using GORM.
type GormOfficeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfficeRepository creates a new GORM office repository.
func NewGormOfficeRepository(db *gorm.DB, tracker aggregateTracker) *GormOfficeRepository {
	return &GormOfficeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new office to the database.
func (r *GormOfficeRepository) Add(ctx context.Context, aggregate *office.Office) error {
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

// Update saves an existing office to the database.
func (r *GormOfficeRepository) Update(ctx context.Context, aggregate *office.Office) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfficeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("officeId", gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an office by ID.
func (r *GormOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*office.Office, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfficeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("office", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every office in the network.
func (r *GormOfficeRepository) GetAll(ctx context.Context) ([]*office.Office, error) {
	var dtos []OfficeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	offices := make([]*office.Office, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offices = append(offices, o)
	}

	return offices, nil
}

// GetFirstByProvinceAndType retrieves the first office of the given type in a province.
func (r *GormOfficeRepository) GetFirstByProvinceAndType(
	ctx context.Context, provinceCode kernel.ProvinceCode, officeType office.Type,
) (*office.Office, error) {
	var dto OfficeDTO
	err := r.db.WithContext(ctx).
		Order("name").
		First(&dto, "province_code = ? AND office_type = ? AND is_active = ?",
			provinceCode.String(), int(officeType), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("office", provinceCode.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
