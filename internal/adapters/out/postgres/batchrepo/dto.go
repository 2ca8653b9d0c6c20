// Package batchrepo provides data transfer objects and mapping functions for
// batch persistence. A batch row owns its item rows; items are replaced as a
// set on every update because membership changes rewrite the whole manifest.
package batchrepo

import (
	"time"

	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting batch aggregates.
type BatchDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchCode           string    `gorm:"index"`
	OriginOfficeID      uuid.UUID `gorm:"type:uuid;index"`
	DestinationOfficeID uuid.UUID `gorm:"type:uuid;index"`
	Status              int       `gorm:"index"`
	MaxWeightKg         float64
	MaxVolumeCm3        *float64
	MaxOrders           *int
	CreatedAt           time.Time
	SealedAt            *time.Time
	DepartedAt          *time.Time
	ArrivedAt           *time.Time

	Items []BatchItemDTO `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

// BatchItemDTO represents one order inside a batch manifest.
type BatchItemDTO struct {
	BatchID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	WeightKg  float64
	VolumeCm3 *float64
}

// TableName specifies the database table name for batch items.
func (BatchItemDTO) TableName() string {
	return "batch_items"
}

func fromDomain(aggregate *batch.Batch) BatchDTO {
	items := aggregate.Items()
	itemDTOs := make([]BatchItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, BatchItemDTO{
			BatchID:   aggregate.ID().Bytes(),
			OrderID:   item.OrderID.Bytes(),
			WeightKg:  item.WeightKg,
			VolumeCm3: item.VolumeCm3,
		})
	}

	return BatchDTO{
		ID:                  aggregate.ID().Bytes(),
		BatchCode:           aggregate.BatchCode(),
		OriginOfficeID:      aggregate.OriginOfficeID().Bytes(),
		DestinationOfficeID: aggregate.DestinationOfficeID().Bytes(),
		Status:              int(aggregate.Status()),
		MaxWeightKg:         aggregate.MaxWeightKg(),
		MaxVolumeCm3:        aggregate.MaxVolumeCm3(),
		MaxOrders:           aggregate.MaxOrders(),
		CreatedAt:           aggregate.CreatedAt(),
		SealedAt:            aggregate.SealedAt(),
		DepartedAt:          aggregate.DepartedAt(),
		ArrivedAt:           aggregate.ArrivedAt(),
		Items:               itemDTOs,
	}
}

func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	originOfficeID, err := kernel.UUIDFromBytes(dto.OriginOfficeID[:])
	if err != nil {
		return nil, err
	}
	destinationOfficeID, err := kernel.UUIDFromBytes(dto.DestinationOfficeID[:])
	if err != nil {
		return nil, err
	}

	items := make([]batch.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		orderID, itemErr := kernel.UUIDFromBytes(itemDTO.OrderID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, batch.Item{
			OrderID:   orderID,
			WeightKg:  itemDTO.WeightKg,
			VolumeCm3: itemDTO.VolumeCm3,
		})
	}

	return batch.RestoreBatch(
		id,
		dto.BatchCode,
		originOfficeID,
		destinationOfficeID,
		batch.Status(dto.Status),
		dto.MaxWeightKg,
		dto.MaxVolumeCm3,
		dto.MaxOrders,
		items,
		dto.CreatedAt,
		dto.SealedAt, dto.DepartedAt, dto.ArrivedAt,
	)
}
