package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
	"postal/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWaitingOrder(t *testing.T, origin, dest kernel.UUID, weightKg float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "VN123456789", origin, dest,
		mustWard(t, "H1001"), weightKg, nil, nil, nil)
	require.NoError(t, err)
	return o
}

func TestAutoBatchOrdersCommandHandler_Handle_OpensBatches(t *testing.T) {
	ctx := t.Context()
	origin := kernel.NewUUID()
	dest := kernel.NewUUID()
	orders := []*order.Order{
		newWaitingOrder(t, origin, dest, 6),
		newWaitingOrder(t, origin, dest, 5),
		newWaitingOrder(t, origin, dest, 4),
	}
	cmd, err := commands.NewAutoBatchOrdersCommand(origin, dest, 10, nil, intPtr(100))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockBatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("BatchRepository").Return(batchRepo)
	orderRepo.On("GetAllBatchableAtOffice", mock.Anything, origin, dest).Return(orders, nil).Once()
	batchRepo.On("GetAllModifiableByOfficePair", mock.Anything, origin, dest).
		Return([]*batch.Batch{}, nil).Once()
	batchRepo.On("Add", mock.Anything, mock.AnythingOfType("*batch.Batch")).Return(nil).Twice()
	orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Times(3)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAutoBatchOrdersCommandHandler(factory, services.NewBatchPacker())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// 10kg cap: 6+4 share a batch, 5 opens a second one.
	assert.Equal(t, 3, result.PackedCount)
	assert.Equal(t, 2, result.CreatedBatches)
	assert.Empty(t, result.Skipped)
	for _, o := range orders {
		assert.True(t, o.IsBatched())
	}
	batchRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAutoBatchOrdersCommandHandler_Handle_NothingWaiting(t *testing.T) {
	ctx := t.Context()
	origin := kernel.NewUUID()
	dest := kernel.NewUUID()
	cmd, err := commands.NewAutoBatchOrdersCommand(origin, dest, 10, nil, intPtr(100))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllBatchableAtOffice", mock.Anything, origin, dest).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAutoBatchOrdersCommandHandler(factory, services.NewBatchPacker())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.AutoBatchOrdersResult{}, result)
}

func TestAutoBatchOrdersCommandHandler_Handle_OversizedOrderIsSkipped(t *testing.T) {
	ctx := t.Context()
	origin := kernel.NewUUID()
	dest := kernel.NewUUID()
	oversized := newWaitingOrder(t, origin, dest, 25)
	cmd, err := commands.NewAutoBatchOrdersCommand(origin, dest, 10, nil, intPtr(100))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockBatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("BatchRepository").Return(batchRepo)
	orderRepo.On("GetAllBatchableAtOffice", mock.Anything, origin, dest).
		Return([]*order.Order{oversized}, nil).Once()
	batchRepo.On("GetAllModifiableByOfficePair", mock.Anything, origin, dest).
		Return([]*batch.Batch{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAutoBatchOrdersCommandHandler(factory, services.NewBatchPacker())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, result.PackedCount)
	assert.Equal(t, 0, result.CreatedBatches)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, services.SkipReasonNoCapacity, result.Skipped[0].Reason)
	assert.False(t, oversized.IsBatched())
}
