package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWard(t *testing.T, code string) kernel.WardCode {
	t.Helper()
	ward, err := kernel.NewWardCode(code)
	require.NoError(t, err)
	return ward
}

func mustProvince(t *testing.T, code string) kernel.ProvinceCode {
	t.Helper()
	province, err := kernel.NewProvinceCode(code)
	require.NoError(t, err)
	return province
}

func ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	origin := kernel.NewUUID()
	dest := kernel.NewUUID()
	ward := mustWard(t, "D1001")

	cmd, err := commands.NewCreateOrderCommand(id, "VN123456789", origin, dest, ward, 2.5,
		ptr(30), ptr(20), ptr(10))
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "VN123456789", cmd.TrackingNumber())
	assert.Equal(t, origin, cmd.OriginOfficeID())
	assert.Equal(t, dest, cmd.DestinationOfficeID())
	assert.Equal(t, ward, cmd.DestinationWardCode())
	assert.InEpsilon(t, 2.5, cmd.ChargeableWeightKg(), 1e-9)
}

func TestNewCreateOrderCommand_DimensionsAreOptional(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "VN1", kernel.NewUUID(),
		kernel.NewUUID(), mustWard(t, "D1001"), 1, nil, nil, nil)
	require.NoError(t, err)

	length, width, height := cmd.Dimensions()
	assert.Nil(t, length)
	assert.Nil(t, width)
	assert.Nil(t, height)
}

func TestNewCreateOrderCommand_PartialDimensions(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "VN1", kernel.NewUUID(),
		kernel.NewUUID(), mustWard(t, "D1001"), 1, ptr(30), nil, nil)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "VN1", kernel.NewUUID(),
		kernel.NewUUID(), mustWard(t, "D1001"), 1, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyTrackingNumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", kernel.NewUUID(),
		kernel.NewUUID(), mustWard(t, "D1001"), 1, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTrackingNumberIsRequired)
}

func TestNewCreateOrderCommand_InvalidWeight(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "VN1", kernel.NewUUID(),
		kernel.NewUUID(), mustWard(t, "D1001"), 0, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}
