// Package ports defines repository and outbound service interfaces for the
// postal domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
)

// OfficeRepository defines the persistence contract for office entities.
type OfficeRepository interface {
	// Add persists a new office to storage.
	Add(ctx context.Context, aggregate *office.Office) error

	// Update persists changes to an existing office.
	Update(ctx context.Context, aggregate *office.Office) error

	// Get retrieves an office by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*office.Office, error)

	// GetAll retrieves every office in the network. Used to build the
	// routing arena.
	GetAll(ctx context.Context) ([]*office.Office, error)

	// GetFirstByProvinceAndType retrieves the first office of the given
	// type in a province. Used to resolve province warehouses.
	GetFirstByProvinceAndType(ctx context.Context, provinceCode kernel.ProvinceCode, officeType office.Type) (*office.Office, error)
}
