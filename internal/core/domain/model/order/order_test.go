package order_test

import (
	"testing"
	"time"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
	"postal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	ward, err := kernel.NewWardCode("D1001")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"VN123456789",
		kernel.NewUUID(),
		kernel.NewUUID(),
		ward,
		2.5,
		nil, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_at_origin", func(t *testing.T) {
		// Given
		ward, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)
		origin := kernel.NewUUID()

		// When
		o, err := order.NewOrder(
			kernel.NewUUID(),
			"VN123456789",
			origin,
			kernel.NewUUID(),
			ward,
			2.5,
			ptr(30), ptr(20), ptr(10),
		)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.CurrentOfficeID().IsEqual(origin))
		assert.Equal(t, 2.5, o.ChargeableWeightKg())
		assert.Nil(t, o.BatchID())
		assert.Nil(t, o.ConsolidationRouteID())
		assert.Nil(t, o.ConsolidatedAt())
		require.NotNil(t, o.VolumeCm3())
		assert.Equal(t, float64(6000), *o.VolumeCm3())
	})

	t.Run("volume_is_nil_without_dimensions", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// Then
		assert.Nil(t, o.VolumeCm3())
	})

	t.Run("partial_dimensions_are_rejected", func(t *testing.T) {
		// Given
		ward, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)

		// When
		_, err = order.NewOrder(
			kernel.NewUUID(),
			"VN123456789",
			kernel.NewUUID(),
			kernel.NewUUID(),
			ward,
			2.5,
			ptr(30), nil, nil,
		)

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non_positive_weight_is_rejected", func(t *testing.T) {
		// Given
		ward, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)

		// When
		_, err = order.NewOrder(
			kernel.NewUUID(),
			"VN123456789",
			kernel.NewUUID(),
			kernel.NewUUID(),
			ward,
			0,
			nil, nil, nil,
		)

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_tracking_number_is_rejected", func(t *testing.T) {
		// Given
		ward, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)

		// When
		_, err = order.NewOrder(
			kernel.NewUUID(),
			"",
			kernel.NewUUID(),
			kernel.NewUUID(),
			ward,
			1,
			nil, nil, nil,
		)

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_order_fails_validation", func(t *testing.T) {
		// Given
		var o order.Order

		// Then
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignToConsolidationRoute(t *testing.T) {
	t.Run("assigns_and_moves_to_origin_office", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		routeID := kernel.NewUUID()

		// When
		err := o.AssignToConsolidationRoute(routeID)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.AtOriginOffice, o.Status())
		require.NotNil(t, o.ConsolidationRouteID())
		assert.True(t, o.ConsolidationRouteID().IsEqual(routeID))
	})

	t.Run("same_route_is_idempotent", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		routeID := kernel.NewUUID()
		require.NoError(t, o.AssignToConsolidationRoute(routeID))

		// When
		err := o.AssignToConsolidationRoute(routeID)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.AtOriginOffice, o.Status())
	})

	t.Run("different_route_keeps_existing_assignment", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		firstRouteID := kernel.NewUUID()
		require.NoError(t, o.AssignToConsolidationRoute(firstRouteID))

		// When
		err := o.AssignToConsolidationRoute(kernel.NewUUID())

		// Then
		require.NoError(t, err)
		require.NotNil(t, o.ConsolidationRouteID())
		assert.True(t, o.ConsolidationRouteID().IsEqual(firstRouteID))
		assert.Equal(t, order.AtOriginOffice, o.Status())
	})
}

func TestOrder_Consolidate(t *testing.T) {
	t.Run("moves_order_to_province_warehouse", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignToConsolidationRoute(kernel.NewUUID()))
		warehouseID := kernel.NewUUID()
		now := time.Now()

		// When
		err := o.Consolidate(warehouseID, now)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.AtProvinceWarehouse, o.Status())
		assert.True(t, o.CurrentOfficeID().IsEqual(warehouseID))
		require.NotNil(t, o.ConsolidatedAt())
		assert.Equal(t, now, *o.ConsolidatedAt())
	})

	t.Run("unassigned_order_is_rejected", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// When
		err := o.Consolidate(kernel.NewUUID(), time.Now())

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_BatchMembership(t *testing.T) {
	t.Run("assign_and_remove_round_trip", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		batchID := kernel.NewUUID()

		// When
		require.NoError(t, o.AssignToBatch(batchID))

		// Then
		assert.True(t, o.IsBatched())
		require.NotNil(t, o.BatchID())
		assert.True(t, o.BatchID().IsEqual(batchID))

		// When
		require.NoError(t, o.RemoveFromBatch())

		// Then
		assert.False(t, o.IsBatched())
		assert.Nil(t, o.BatchID())
	})

	t.Run("double_assignment_is_rejected", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignToBatch(kernel.NewUUID()))

		// When
		err := o.AssignToBatch(kernel.NewUUID())

		// Then
		assert.ErrorIs(t, err, order.ErrOrderAlreadyBatched)
	})

	t.Run("removing_unbatched_order_is_rejected", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// Then
		assert.ErrorIs(t, o.RemoveFromBatch(), order.ErrOrderNotBatched)
	})
}

func TestOrder_BatchLifecycle(t *testing.T) {
	t.Run("full_journey", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignToConsolidationRoute(kernel.NewUUID()))
		require.NoError(t, o.Consolidate(kernel.NewUUID(), time.Now()))
		require.NoError(t, o.AssignToBatch(kernel.NewUUID()))

		destinationID := kernel.NewUUID()

		// When / Then
		require.NoError(t, o.MarkSortedAtOrigin())
		assert.Equal(t, order.SortedAtOrigin, o.Status())

		require.NoError(t, o.DepartToHub())
		assert.Equal(t, order.InTransitToHub, o.Status())

		require.NoError(t, o.ArriveAtDestination(destinationID))
		assert.Equal(t, order.AtDestinationOffice, o.Status())
		assert.True(t, o.CurrentOfficeID().IsEqual(destinationID))

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Nil(t, o.BatchID())

		require.NoError(t, o.CompleteDelivery())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("release_from_cancelled_batch", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignToConsolidationRoute(kernel.NewUUID()))
		require.NoError(t, o.Consolidate(kernel.NewUUID(), time.Now()))
		require.NoError(t, o.AssignToBatch(kernel.NewUUID()))
		require.NoError(t, o.MarkSortedAtOrigin())

		// When
		err := o.ReleaseFromBatch()

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.AtOriginOffice, o.Status())
		assert.Nil(t, o.BatchID())
	})

	t.Run("failed_delivery_retry", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignToConsolidationRoute(kernel.NewUUID()))
		require.NoError(t, o.Consolidate(kernel.NewUUID(), time.Now()))
		require.NoError(t, o.AssignToBatch(kernel.NewUUID()))
		require.NoError(t, o.MarkSortedAtOrigin())
		require.NoError(t, o.DepartToHub())
		require.NoError(t, o.ArriveAtDestination(kernel.NewUUID()))
		require.NoError(t, o.StartDelivery())

		// When
		require.NoError(t, o.FailDelivery())

		// Then
		assert.Equal(t, order.DeliveryFailed, o.Status())
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.CompleteDelivery())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_order_as_stored", func(t *testing.T) {
		// Given
		ward, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)
		id := kernel.NewUUID()
		origin := kernel.NewUUID()
		current := kernel.NewUUID()
		destination := kernel.NewUUID()
		routeID := kernel.NewUUID()
		batchID := kernel.NewUUID()
		createdAt := time.Now().Add(-time.Hour)
		consolidatedAt := time.Now()

		// When
		o, err := order.RestoreOrder(
			id,
			"VN123456789",
			origin,
			current,
			destination,
			ward,
			2.5,
			nil, nil, nil,
			order.AtProvinceWarehouse,
			&routeID,
			&batchID,
			createdAt,
			&consolidatedAt,
		)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.AtProvinceWarehouse, o.Status())
		assert.True(t, o.CurrentOfficeID().IsEqual(current))
		assert.True(t, o.BatchID().IsEqual(batchID))
		assert.True(t, o.ConsolidationRouteID().IsEqual(routeID))
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		// Given
		ward, err := kernel.NewWardCode("D1001")
		require.NoError(t, err)

		// When
		_, err = order.RestoreOrder(
			kernel.NewUUID(),
			"VN123456789",
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			ward,
			2.5,
			nil, nil, nil,
			order.UnknownStatus,
			nil,
			nil,
			time.Now(),
			nil,
		)

		// Then
		require.Error(t, err)
	})
}
