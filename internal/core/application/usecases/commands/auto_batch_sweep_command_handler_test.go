package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/order"
	"postal/internal/core/domain/services"
	"postal/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAutoBatchSweepCommandHandler_Handle_NoPairs(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAutoBatchSweepCommand(500, nil, intPtr(50))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetBatchableOfficePairs", mock.Anything).
		Return([]ports.BatchableOfficePair{}, nil).Once()
	listUow := new(MockBatchUoW)
	listUow.On("OrderRepository").Return(orderRepo).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(listUow).Once()

	packing := commands.NewAutoBatchOrdersCommandHandler(factory, services.NewBatchPacker())
	h := commands.NewAutoBatchSweepCommandHandler(factory, packing)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Zero(t, result.PairsChecked)
	assert.Zero(t, result.PackedCount)
	assert.Empty(t, result.Failures)
	orderRepo.AssertExpectations(t)
}

func TestAutoBatchSweepCommandHandler_Handle_PacksEachPair(t *testing.T) {
	ctx := t.Context()
	officeID := kernel.NewUUID()
	destinationID := kernel.NewUUID()
	cmd, err := commands.NewAutoBatchSweepCommand(500, nil, intPtr(50))
	require.NoError(t, err)

	pairs := []ports.BatchableOfficePair{
		{OfficeID: officeID, DestinationOfficeID: destinationID},
	}
	listRepo := new(MockOrderRepository)
	listRepo.On("GetBatchableOfficePairs", mock.Anything).Return(pairs, nil).Once()
	listUow := new(MockBatchUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()

	// The pair itself turns out to have nothing left to pack: the inner run
	// commits an empty result.
	pairRepo := new(MockOrderRepository)
	pairRepo.On("GetAllBatchableAtOffice", mock.Anything, officeID, destinationID).
		Return([]*order.Order{}, nil).Once()
	pairUow := new(MockBatchUoW)
	mock.InOrder(
		pairUow.On("Begin", ctx).Return(nil).Once(),
		pairUow.On("OrderRepository").Return(pairRepo).Once(),
		pairUow.On("Commit", ctx).Return(nil).Once(),
		pairUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(pairUow).Once()

	packing := commands.NewAutoBatchOrdersCommandHandler(factory, services.NewBatchPacker())
	h := commands.NewAutoBatchSweepCommandHandler(factory, packing)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.PairsChecked)
	assert.Zero(t, result.PackedCount)
	assert.Zero(t, result.CreatedBatches)
	assert.Empty(t, result.Failures)
	pairRepo.AssertExpectations(t)
	pairUow.AssertExpectations(t)
}
