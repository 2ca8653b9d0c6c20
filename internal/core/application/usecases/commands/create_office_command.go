package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/pkg/guard"
)

var (
	ErrCreateOfficeCommandIsNotConstructed = errors.New(
		"CreateOfficeCommand must be created via NewCreateOfficeCommand constructor",
	)
	ErrOfficeNameIsRequired = errors.New("office name is required")
)

// CreateOfficeCommand represents a request to register a new office in the
// postal network. Hubs carry no codes, province-level offices carry a
// province code, and ward-level offices carry both codes.
type CreateOfficeCommand struct { //nolint:recvcheck //using for validation
	officeID     kernel.UUID
	name         string
	officeType   office.Type
	regionID     kernel.RegionID
	provinceCode *kernel.ProvinceCode
	wardCode     *kernel.WardCode
	parentID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOfficeCommand creates a command to register a new office.
func NewCreateOfficeCommand(
	officeID kernel.UUID,
	name string,
	officeType office.Type,
	regionID kernel.RegionID,
	provinceCode *kernel.ProvinceCode,
	wardCode *kernel.WardCode,
	parentID *kernel.UUID,
) (CreateOfficeCommand, error) {
	officeCommand := CreateOfficeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		officeCommand.setOfficeID(officeID),
		officeCommand.setName(name),
		officeCommand.setType(officeType),
		officeCommand.setRegionID(regionID),
	); err != nil {
		return CreateOfficeCommand{}, err
	}

	// Code consistency per office type is enforced by the aggregate.
	officeCommand.provinceCode = provinceCode
	officeCommand.wardCode = wardCode
	officeCommand.parentID = parentID

	return officeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOfficeCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfficeCommandIsNotConstructed)
}

// OfficeID returns the unique identifier for the office.
func (c CreateOfficeCommand) OfficeID() kernel.UUID {
	return c.officeID
}

// Name returns the human-readable office name.
func (c CreateOfficeCommand) Name() string {
	return c.name
}

// OfficeType returns the tier of the office in the network.
func (c CreateOfficeCommand) OfficeType() office.Type {
	return c.officeType
}

// RegionID returns the region the office belongs to.
func (c CreateOfficeCommand) RegionID() kernel.RegionID {
	return c.regionID
}

// ProvinceCode returns the optional province code.
func (c CreateOfficeCommand) ProvinceCode() *kernel.ProvinceCode {
	return c.provinceCode
}

// WardCode returns the optional ward code.
func (c CreateOfficeCommand) WardCode() *kernel.WardCode {
	return c.wardCode
}

// ParentID returns the optional parent office identifier.
func (c CreateOfficeCommand) ParentID() *kernel.UUID {
	return c.parentID
}

func (c *CreateOfficeCommand) setOfficeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.officeID = id
	return nil
}

func (c *CreateOfficeCommand) setName(name string) error {
	if name == "" {
		return ErrOfficeNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOfficeCommand) setType(officeType office.Type) error {
	if err := officeType.Validate(); err != nil {
		return err
	}

	c.officeType = officeType
	return nil
}

func (c *CreateOfficeCommand) setRegionID(regionID kernel.RegionID) error {
	if err := regionID.Validate(); err != nil {
		return err
	}

	c.regionID = regionID
	return nil
}
