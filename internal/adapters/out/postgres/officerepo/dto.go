// Package officerepo provides data transfer objects and mapping functions for
// office persistence. Offices form the static topology of the postal network,
// so reads dominate writes here.
package officerepo

import (
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"

	"github.com/google/uuid"
)

// OfficeDTO represents the database structure for persisting offices.
type OfficeDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	OfficeType   int     `gorm:"index"`
	RegionID     int     `gorm:"index"`
	ProvinceCode *string `gorm:"index"`
	WardCode     *string `gorm:"index"`
	ParentID     *uuid.UUID `gorm:"type:uuid"`
	IsActive     bool
}

// TableName specifies the database table name for office entities.
func (OfficeDTO) TableName() string {
	return "offices"
}

func fromDomain(aggregate *office.Office) OfficeDTO {
	var provinceCode, wardCode *string
	if code := aggregate.ProvinceCode(); code != nil {
		s := code.String()
		provinceCode = &s
	}
	if code := aggregate.WardCode(); code != nil {
		s := code.String()
		wardCode = &s
	}

	var parentID *uuid.UUID
	if id := aggregate.ParentID(); id != nil {
		raw := id.Bytes()
		parentID = &raw
	}

	return OfficeDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		OfficeType:   int(aggregate.Type()),
		RegionID:     aggregate.RegionID().Int(),
		ProvinceCode: provinceCode,
		WardCode:     wardCode,
		ParentID:     parentID,
		IsActive:     aggregate.IsActive(),
	}
}

func toDomain(dto OfficeDTO) (*office.Office, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	regionID, err := kernel.NewRegionID(dto.RegionID)
	if err != nil {
		return nil, err
	}

	var provinceCode *kernel.ProvinceCode
	if dto.ProvinceCode != nil {
		code, codeErr := kernel.NewProvinceCode(*dto.ProvinceCode)
		if codeErr != nil {
			return nil, codeErr
		}
		provinceCode = &code
	}

	var wardCode *kernel.WardCode
	if dto.WardCode != nil {
		code, codeErr := kernel.NewWardCode(*dto.WardCode)
		if codeErr != nil {
			return nil, codeErr
		}
		wardCode = &code
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &pID
	}

	return office.RestoreOffice(id, dto.Name, office.Type(dto.OfficeType), regionID,
		provinceCode, wardCode, parentID, dto.IsActive)
}
