package services_test

import (
	"testing"
	"time"

	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
	"postal/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, weightKg float64) *order.Order {
	t.Helper()

	ward, err := kernel.NewWardCode("D1001")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"VN123456789",
		kernel.NewUUID(),
		kernel.NewUUID(),
		ward,
		weightKg,
		nil, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func buildBatch(t *testing.T, maxWeightKg float64, maxOrders int) *batch.Batch {
	t.Helper()

	b, err := batch.NewBatch(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		maxWeightKg,
		nil,
		&maxOrders,
		time.Now(),
	)
	require.NoError(t, err)
	return b
}

func batchFactory(t *testing.T, maxWeightKg float64, maxOrders int) services.BatchFactory {
	t.Helper()

	return func() (*batch.Batch, error) {
		return batch.NewBatch(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			maxWeightKg,
			nil,
			&maxOrders,
			time.Now(),
		)
	}
}

func TestBatchPacker_Pack(t *testing.T) {
	packer := services.NewBatchPacker()

	t.Run("six_and_five_kg_split_across_two_batches", func(t *testing.T) {
		// Given capacity 10kg / 2 orders and parcels of 6kg and 5kg
		heavy := buildOrder(t, 6)
		light := buildOrder(t, 5)
		first := buildBatch(t, 10, 2)

		// When
		result, err := packer.Pack(
			[]*order.Order{light, heavy},
			[]*batch.Batch{first},
			batchFactory(t, 10, 2),
		)

		// Then the 6kg parcel fills the first batch and the 5kg one opens a second
		require.NoError(t, err)
		assert.Equal(t, 2, result.PackedCount)
		require.Len(t, result.CreatedBatches, 1)
		assert.Empty(t, result.Skipped)

		assert.True(t, first.Contains(heavy.ID()))
		second := result.CreatedBatches[0]
		assert.True(t, second.Contains(light.ID()))
		assert.True(t, heavy.BatchID().IsEqual(first.ID()))
		assert.True(t, light.BatchID().IsEqual(second.ID()))
	})

	t.Run("heaviest_orders_are_placed_first", func(t *testing.T) {
		// Given a single batch that fits only the two heaviest parcels
		orders := []*order.Order{
			buildOrder(t, 1),
			buildOrder(t, 7),
			buildOrder(t, 3),
		}
		b := buildBatch(t, 10, 10)

		// When no new batches may be opened
		result, err := packer.Pack(orders, []*batch.Batch{b}, nil)

		// Then the 7kg and 3kg parcels are packed, the 1kg one is skipped
		require.NoError(t, err)
		assert.Equal(t, 2, result.PackedCount)
		assert.True(t, b.Contains(orders[1].ID()))
		assert.True(t, b.Contains(orders[2].ID()))
		require.Len(t, result.Skipped, 1)
		assert.True(t, result.Skipped[0].OrderID.IsEqual(orders[0].ID()))
		assert.Equal(t, services.SkipReasonNoCapacity, result.Skipped[0].Reason)
	})

	t.Run("already_batched_orders_are_skipped", func(t *testing.T) {
		// Given
		o := buildOrder(t, 2)
		require.NoError(t, o.AssignToBatch(kernel.NewUUID()))
		b := buildBatch(t, 10, 10)

		// When
		result, err := packer.Pack([]*order.Order{o}, []*batch.Batch{b}, nil)

		// Then
		require.NoError(t, err)
		assert.Zero(t, result.PackedCount)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, services.SkipReasonAlreadyBatched, result.Skipped[0].Reason)
	})

	t.Run("sealed_batches_receive_nothing", func(t *testing.T) {
		// Given
		sealed := buildBatch(t, 10, 10)
		require.NoError(t, sealed.AddOrder(kernel.NewUUID(), 1, nil))
		require.NoError(t, sealed.Seal(time.Now()))
		o := buildOrder(t, 2)

		// When
		result, err := packer.Pack([]*order.Order{o}, []*batch.Batch{sealed}, nil)

		// Then
		require.NoError(t, err)
		assert.Zero(t, result.PackedCount)
		require.Len(t, result.Skipped, 1)
	})

	t.Run("oversized_order_is_skipped_even_with_factory", func(t *testing.T) {
		// Given a parcel heavier than any batch can hold
		o := buildOrder(t, 50)

		// When
		result, err := packer.Pack([]*order.Order{o}, nil, batchFactory(t, 10, 2))

		// Then
		require.NoError(t, err)
		assert.Zero(t, result.PackedCount)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, services.SkipReasonNoCapacity, result.Skipped[0].Reason)
	})

	t.Run("empty_input_packs_nothing", func(t *testing.T) {
		// When
		result, err := packer.Pack(nil, nil, nil)

		// Then
		require.NoError(t, err)
		assert.Zero(t, result.PackedCount)
		assert.Empty(t, result.CreatedBatches)
		assert.Empty(t, result.Skipped)
	})
}
