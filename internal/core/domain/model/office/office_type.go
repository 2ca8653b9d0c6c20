package office

import (
	"fmt"

	"postal/internal/pkg/errs"
)

// Type classifies an office within the postal hierarchy.
//
// The network is a tree: ward offices sit under province offices, province
// offices under a regional hub. Routing between provinces always travels
// through hubs.
type Type int

const (
	// UnknownType represents an invalid or undefined office type.
	UnknownType Type = iota

	// WardPost is a customer-facing office at the ward level where
	// parcels are accepted and delivered.
	WardPost

	// WardWarehouse is a ward-level sorting facility.
	WardWarehouse

	// ProvincePost is a customer-facing office at the province level.
	ProvincePost

	// ProvinceWarehouse is the province-level consolidation warehouse.
	// Consolidation routes terminate here and inter-province batches
	// originate here.
	ProvinceWarehouse

	// Hub is a regional exchange point. Hubs are the only offices that
	// participate in the inter-region transfer graph.
	Hub
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:       "Unknown",
		WardPost:          "WardPost",
		WardWarehouse:     "WardWarehouse",
		ProvincePost:      "ProvincePost",
		ProvinceWarehouse: "ProvinceWarehouse",
		Hub:               "Hub",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		WardPost:          "WardPost",
		WardWarehouse:     "WardWarehouse",
		ProvincePost:      "ProvincePost",
		ProvinceWarehouse: "ProvinceWarehouse",
		Hub:               "Hub",
	}
}

// Validate checks if the Type value is one of the defined office types.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("officeType is invalid",
			fmt.Errorf("%d is not a valid office type", t))
	}
	return nil
}

// String returns the human-readable name of the office type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// IsHub reports whether the office type is a regional hub.
func (t Type) IsHub() bool {
	return t == Hub
}

// IsWarehouse reports whether the office type is a sorting or
// consolidation facility rather than a customer-facing post.
func (t Type) IsWarehouse() bool {
	return t == WardWarehouse || t == ProvinceWarehouse
}
