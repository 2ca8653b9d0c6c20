package office

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"
)

var (
	// ErrOfficeIsNotConstructed is returned when an Office instance was not created
	// through NewOffice or RestoreOffice.
	ErrOfficeIsNotConstructed = errors.New("Office must be created via NewOffice constructor")
)

// Office represents a node of the postal network hierarchy: a ward post or
// warehouse, a province post or warehouse, or a regional hub.
//
// Office invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Must carry a valid region id
//   - Hubs carry no province or ward codes
//   - Ward-level offices carry both a province code and a ward code
//   - Province-level offices carry a province code and no ward code
type Office struct {
	id           kernel.UUID
	name         string
	officeType   Type
	regionID     kernel.RegionID
	provinceCode *kernel.ProvinceCode
	wardCode     *kernel.WardCode

	// parentID points to the next office up the hierarchy (ward office to
	// province warehouse, province warehouse to hub). Nil for hubs.
	parentID *kernel.UUID

	isActive      bool
	isConstructed bool
}

// NewOffice creates a new active Office with validation.
//
// provinceCode and wardCode requirements depend on the office type:
// hubs must carry neither, ward-level offices must carry both, and
// province-level offices must carry only the province code.
func NewOffice(
	id kernel.UUID,
	name string,
	officeType Type,
	regionID kernel.RegionID,
	provinceCode *kernel.ProvinceCode,
	wardCode *kernel.WardCode,
	parentID *kernel.UUID,
) (*Office, error) {
	office := &Office{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		office.setID(id),
		office.setName(name),
		office.setType(officeType),
		office.setRegionID(regionID),
	); err != nil {
		return nil, err
	}

	if err := office.setCodes(provinceCode, wardCode); err != nil {
		return nil, err
	}

	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return nil, err
		}
		office.parentID = parentID
	}

	return office, nil
}

// RestoreOffice reconstructs an Office from persistence without running the
// creation-time defaults. Used exclusively by repository implementations.
func RestoreOffice(
	id kernel.UUID,
	name string,
	officeType Type,
	regionID kernel.RegionID,
	provinceCode *kernel.ProvinceCode,
	wardCode *kernel.WardCode,
	parentID *kernel.UUID,
	isActive bool,
) (*Office, error) {
	office, err := NewOffice(id, name, officeType, regionID, provinceCode, wardCode, parentID)
	if err != nil {
		return nil, err
	}

	office.isActive = isActive
	return office, nil
}

// Validate ensures the Office instance was properly constructed.
func (o *Office) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfficeIsNotConstructed
	}
	return nil
}

// IsEqual compares two offices by their unique identifiers.
func (o *Office) IsEqual(other *Office) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the office's unique identifier.
func (o *Office) ID() kernel.UUID {
	return o.id
}

// Name returns the office's display name.
func (o *Office) Name() string {
	return o.name
}

// Type returns the office's place in the hierarchy.
func (o *Office) Type() Type {
	return o.officeType
}

// RegionID returns the administrative region the office belongs to.
func (o *Office) RegionID() kernel.RegionID {
	return o.regionID
}

// ProvinceCode returns the office's province code, nil for hubs.
func (o *Office) ProvinceCode() *kernel.ProvinceCode {
	return o.provinceCode
}

// WardCode returns the office's ward code, nil for non-ward offices.
func (o *Office) WardCode() *kernel.WardCode {
	return o.wardCode
}

// ParentID returns the identifier of the office one level up the
// hierarchy, nil for hubs.
func (o *Office) ParentID() *kernel.UUID {
	return o.parentID
}

// IsActive reports whether the office currently participates in routing.
func (o *Office) IsActive() bool {
	return o.isActive
}

// IsHub reports whether the office is a regional hub.
func (o *Office) IsHub() bool {
	return o.officeType.IsHub()
}

// Activate marks the office as participating in routing.
func (o *Office) Activate() {
	o.isActive = true
}

// Deactivate removes the office from routing.
func (o *Office) Deactivate() {
	o.isActive = false
}

func (o *Office) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Office) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *Office) setType(officeType Type) error {
	if err := officeType.Validate(); err != nil {
		return err
	}
	o.officeType = officeType
	return nil
}

func (o *Office) setRegionID(regionID kernel.RegionID) error {
	if err := regionID.Validate(); err != nil {
		return err
	}
	o.regionID = regionID
	return nil
}

// setCodes enforces the code requirements per office type.
func (o *Office) setCodes(provinceCode *kernel.ProvinceCode, wardCode *kernel.WardCode) error {
	if o.officeType.IsHub() {
		if provinceCode != nil || wardCode != nil {
			return errs.NewValueIsInvalidError("hub offices must not carry province or ward codes")
		}
		return nil
	}

	if provinceCode == nil {
		return errs.NewValueIsRequiredError("provinceCode")
	}
	if err := provinceCode.Validate(); err != nil {
		return err
	}
	o.provinceCode = provinceCode

	isWardLevel := o.officeType == WardPost || o.officeType == WardWarehouse
	if isWardLevel {
		if wardCode == nil {
			return errs.NewValueIsRequiredError("wardCode")
		}
		if err := wardCode.Validate(); err != nil {
			return err
		}
		o.wardCode = wardCode
		return nil
	}

	if wardCode != nil {
		return errs.NewValueIsInvalidError("province offices must not carry a ward code")
	}
	return nil
}
