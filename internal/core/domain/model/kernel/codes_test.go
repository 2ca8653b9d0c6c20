package kernel_test

import (
	"testing"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWardCode(t *testing.T) {
	t.Run("valid_code", func(t *testing.T) {
		// When
		ward, err := kernel.NewWardCode("D1001")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "D1001", ward.String())
		assert.NoError(t, ward.Validate())
	})

	t.Run("empty_code_is_rejected", func(t *testing.T) {
		// When
		_, err := kernel.NewWardCode("")

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var ward kernel.WardCode

		// Then
		assert.Error(t, ward.Validate())
	})
}

func TestWardCode_IsEqual(t *testing.T) {
	t.Run("equal_codes", func(t *testing.T) {
		// Given
		a, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)
		b, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)

		// Then
		assert.True(t, a.IsEqual(b))
	})

	t.Run("different_codes", func(t *testing.T) {
		// Given
		a, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)
		b, err := kernel.NewWardCode("D1002")
		require.NoError(t, err)

		// Then
		assert.False(t, a.IsEqual(b))
	})
}

func TestNewProvinceCode(t *testing.T) {
	t.Run("valid_code", func(t *testing.T) {
		// When
		province, err := kernel.NewProvinceCode("HCM")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "HCM", province.String())
		assert.NoError(t, province.Validate())
	})

	t.Run("empty_code_is_rejected", func(t *testing.T) {
		// When
		_, err := kernel.NewProvinceCode("")

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewRegionID(t *testing.T) {
	t.Run("valid_id", func(t *testing.T) {
		// When
		region, err := kernel.NewRegionID(3)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 3, region.Int())
		assert.NoError(t, region.Validate())
	})

	t.Run("zero_is_rejected", func(t *testing.T) {
		// When
		_, err := kernel.NewRegionID(0)

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_is_rejected", func(t *testing.T) {
		// When
		_, err := kernel.NewRegionID(-1)

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("is_equal", func(t *testing.T) {
		// Given
		a, err := kernel.NewRegionID(2)
		require.NoError(t, err)
		b, err := kernel.NewRegionID(2)
		require.NoError(t, err)
		c, err := kernel.NewRegionID(5)
		require.NoError(t, err)

		// Then
		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
