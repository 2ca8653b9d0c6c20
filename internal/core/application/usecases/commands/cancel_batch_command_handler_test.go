package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
	"postal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBatchCommandHandler_Handle_ReleasesOrders(t *testing.T) {
	ctx := t.Context()
	b, o := newBatchWithOrder(t)
	cmd, err := commands.NewCancelBatchCommand(b.ID(), b.OriginOfficeID())
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByBatch", mock.Anything, b.ID()).Return([]*order.Order{o}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBatchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, batch.Cancelled, b.Status())
	assert.Equal(t, 0, b.OrderCount())
	assert.Equal(t, order.AtOriginOffice, o.Status())
	assert.Nil(t, o.BatchID())
	batchRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCancelBatchCommandHandler_Handle_WrongOffice(t *testing.T) {
	ctx := t.Context()
	b, _ := newBatchWithOrder(t)
	cmd, err := commands.NewCancelBatchCommand(b.ID(), kernel.NewUUID())
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBatchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOperationIsForbidden)
}

func TestCancelBatchCommandHandler_Handle_DepartedBatch(t *testing.T) {
	ctx := t.Context()
	b, o := newBatchWithOrder(t)
	require.NoError(t, o.MarkSortedAtOrigin())
	sealAndDepart(t, b)
	require.NoError(t, o.DepartToHub())
	cmd, err := commands.NewCancelBatchCommand(b.ID(), b.OriginOfficeID())
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByBatch", mock.Anything, b.ID()).Return([]*order.Order{o}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBatchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, batch.InTransit, b.Status())
}

func sealAndDepart(t *testing.T, b *batch.Batch) {
	t.Helper()
	now := b.CreatedAt()
	require.NoError(t, b.Seal(now))
	require.NoError(t, b.Depart(now))
}
