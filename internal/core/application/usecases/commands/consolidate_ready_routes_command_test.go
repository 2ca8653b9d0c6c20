package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsolidateReadyRoutesCommand(t *testing.T) {
	cmd, err := commands.NewConsolidateReadyRoutesCommand()

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Nil(t, cmd.ProvinceCode())
}

func TestNewConsolidateReadyRoutesByProvinceCommand(t *testing.T) {
	provinceCode, err := kernel.NewProvinceCode("HCM")
	require.NoError(t, err)

	cmd, err := commands.NewConsolidateReadyRoutesByProvinceCommand(provinceCode)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	require.NotNil(t, cmd.ProvinceCode())
	assert.Equal(t, "HCM", cmd.ProvinceCode().String())
}

func TestNewConsolidateReadyRoutesByProvinceCommand_ZeroProvince(t *testing.T) {
	_, err := commands.NewConsolidateReadyRoutesByProvinceCommand(kernel.ProvinceCode{})

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestConsolidateReadyRoutesCommand_Validate_Unconstructed(t *testing.T) {
	var cmd commands.ConsolidateReadyRoutesCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrConsolidateReadyRoutesCommandIsNotConstructed)
}
