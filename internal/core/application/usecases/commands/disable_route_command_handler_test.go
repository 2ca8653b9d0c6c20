package commands_test

import (
	"testing"
	"time"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHub(t *testing.T, regionID int) *office.Office {
	t.Helper()
	region, err := kernel.NewRegionID(regionID)
	require.NoError(t, err)
	hub, err := office.NewOffice(kernel.NewUUID(), "Hub", office.Hub, region, nil, nil, nil)
	require.NoError(t, err)
	return hub
}

func newOutstandingBatch(t *testing.T, orderCount int) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 500, nil, intPtr(100),
		time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	for range orderCount {
		require.NoError(t, b.AddOrder(kernel.NewUUID(), 1, nil))
	}
	return b
}

func TestDisableRouteCommandHandler_Handle_SnapshotsTraffic(t *testing.T) {
	ctx := t.Context()
	fromHub := newHub(t, 1)
	toHub := newHub(t, 2)
	route, err := transfer.NewRoute(kernel.NewUUID(), fromHub.ID(), toHub.ID(), 320, 6, 1)
	require.NoError(t, err)
	caught := []*batch.Batch{newOutstandingBatch(t, 3), newOutstandingBatch(t, 2)}

	cmd, err := commands.NewDisableRouteCommand(route.ID(), transfer.RoadBlocked, "landslide on NH1", nil)
	require.NoError(t, err)

	routeRepo := new(MockTransferRouteRepository)
	disruptionRepo := new(MockDisruptionRepository)
	batchRepo := new(MockBatchRepository)
	officeRepo := new(MockOfficeRepository)
	uow := new(MockTransferUoW)

	var stored *transfer.Disruption
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransferRouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, route.ID()).Return(route, nil).Once(),
		uow.On("OfficeRepository").Return(officeRepo).Once(),
		officeRepo.On("Get", mock.Anything, fromHub.ID()).Return(fromHub, nil).Once(),
		uow.On("OfficeRepository").Return(officeRepo).Once(),
		officeRepo.On("Get", mock.Anything, toHub.ID()).Return(toHub, nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("GetAllOutstandingBetweenRegions", mock.Anything, fromHub.RegionID(), toHub.RegionID()).
			Return(caught, nil).Once(),
		uow.On("DisruptionRepository").Return(disruptionRepo).Once(),
		disruptionRepo.On("Add", mock.Anything, mock.AnythingOfType("*transfer.Disruption")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*transfer.Disruption)
			}).Return(nil).Once(),
		uow.On("TransferRouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Update", mock.Anything, route).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)
	notifier.On("Dispatch", ctx, mock.MatchedBy(func(event ports.NotificationEvent) bool {
		return event.Name == ports.EventRouteDisrupted && event.Attributes["batchCount"] == "2"
	})).Once()

	h := commands.NewDisableRouteCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, route.IsActive())
	require.NotNil(t, stored)
	assert.Equal(t, 2, stored.AffectedBatchCount())
	assert.Equal(t, 5, stored.AffectedOrderCount())
	assert.Equal(t, transfer.RoadBlocked, stored.Type())
	assert.True(t, stored.IsActive())
	notifier.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	disruptionRepo.AssertExpectations(t)
}

func TestDisableRouteCommandHandler_Handle_AlreadyDisabled(t *testing.T) {
	ctx := t.Context()
	route, err := transfer.NewRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 320, 6, 1)
	require.NoError(t, err)
	require.NoError(t, route.Disable())

	cmd, err := commands.NewDisableRouteCommand(route.ID(), transfer.Maintenance, "bridge repair", nil)
	require.NoError(t, err)

	routeRepo := new(MockTransferRouteRepository)
	uow := new(MockTransferUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransferRouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, route.ID()).Return(route, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)

	h := commands.NewDisableRouteCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, transfer.ErrRouteAlreadyDisabled)
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}
