package kernel

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// WardCode identifies a ward inside a province. Wards are the finest
// administrative unit the network routes to; an empty code is invalid.
//
// Example:
//
//	ward, err := kernel.NewWardCode("D1001")
//	if err != nil {
//	    // handle invalid code
//	}
type WardCode struct {
	code string
}

// NewWardCode creates a validated ward code. The code must be non-empty.
func NewWardCode(code string) (WardCode, error) {
	if code == "" {
		return WardCode{}, errs.NewValueIsRequiredError("wardCode")
	}
	return WardCode{code: code}, nil
}

// String returns the raw ward code.
func (w WardCode) String() string {
	return w.code
}

// IsEqual compares two ward codes for equality.
func (w WardCode) IsEqual(other WardCode) bool {
	return w.code == other.code
}

// Validate returns an error when the ward code is the zero value.
func (w WardCode) Validate() error {
	if w.code == "" {
		return errs.NewValueIsRequiredError("wardCode")
	}
	return nil
}

// ProvinceCode identifies a province. Every non-hub office belongs to
// exactly one province; hubs sit above the province level and carry none.
type ProvinceCode struct {
	code string
}

// NewProvinceCode creates a validated province code. The code must be non-empty.
func NewProvinceCode(code string) (ProvinceCode, error) {
	if code == "" {
		return ProvinceCode{}, errs.NewValueIsRequiredError("provinceCode")
	}
	return ProvinceCode{code: code}, nil
}

// String returns the raw province code.
func (p ProvinceCode) String() string {
	return p.code
}

// IsEqual compares two province codes for equality.
func (p ProvinceCode) IsEqual(other ProvinceCode) bool {
	return p.code == other.code
}

// Validate returns an error when the province code is the zero value.
func (p ProvinceCode) Validate() error {
	if p.code == "" {
		return errs.NewValueIsRequiredError("provinceCode")
	}
	return nil
}

// RegionID identifies an administrative region. Each region is served by
// exactly one hub; region ids are positive integers assigned by network
// administration.
type RegionID struct {
	id int
}

// NewRegionID creates a validated region id. The id must be greater than zero.
func NewRegionID(id int) (RegionID, error) {
	if id <= 0 {
		return RegionID{}, errs.NewValueIsInvalidErrorWithCause("regionID",
			fmt.Errorf("%d is not greater than 0", id))
	}
	return RegionID{id: id}, nil
}

// Int returns the raw region id.
func (r RegionID) Int() int {
	return r.id
}

// IsEqual compares two region ids for equality.
func (r RegionID) IsEqual(other RegionID) bool {
	return r.id == other.id
}

// Validate returns an error when the region id is the zero value.
func (r RegionID) Validate() error {
	if r.id <= 0 {
		return errs.NewValueIsRequiredError("regionID")
	}
	return nil
}
