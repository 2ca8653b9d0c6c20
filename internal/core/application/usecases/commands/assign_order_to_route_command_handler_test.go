package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConsolidationRoute(t *testing.T, warehouseID kernel.UUID, wards ...string) *consolidation.Route {
	t.Helper()
	wardCodes := make([]kernel.WardCode, 0, len(wards))
	for _, w := range wards {
		wardCodes = append(wardCodes, mustWard(t, w))
	}
	route, err := consolidation.NewRoute(kernel.NewUUID(), "Morning run", mustProvince(t, "HCM"),
		warehouseID, wardCodes, nil, nil, nil)
	require.NoError(t, err)
	return route
}

func newAcceptedOrder(t *testing.T, origin *office.Office) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "VN123456789", origin.ID(), kernel.NewUUID(),
		mustWard(t, "H1001"), 2.5, nil, nil, nil)
	require.NoError(t, err)
	return o
}

func TestAssignOrderToRouteCommandHandler_Handle_ExplicitRoute(t *testing.T) {
	ctx := t.Context()
	origin := newWardPost(t)
	o := newAcceptedOrder(t, origin)
	route := newTestConsolidationRoute(t, kernel.NewUUID(), "D1001")
	cmd, err := commands.NewAssignOrderToRouteCommand(o.ID(), routeIDPtr(route.ID()))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	officeRepo := new(MockOfficeRepository)
	routeRepo := new(MockConsolidationRouteRepository)
	uow := new(MockConsolidationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("OfficeRepository").Return(officeRepo).Once(),
		officeRepo.On("Get", mock.Anything, origin.ID()).Return(origin, nil).Once(),
		uow.On("ConsolidationRouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, route.ID()).Return(route, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConsolidationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderToRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.AtOriginOffice, o.Status())
	require.NotNil(t, o.ConsolidationRouteID())
	assert.True(t, o.ConsolidationRouteID().IsEqual(route.ID()))
	orderRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignOrderToRouteCommandHandler_Handle_AutomaticSelection(t *testing.T) {
	ctx := t.Context()
	origin := newWardPost(t)
	o := newAcceptedOrder(t, origin)
	other := newTestConsolidationRoute(t, kernel.NewUUID(), "D2002")
	serving := newTestConsolidationRoute(t, kernel.NewUUID(), "D1001")
	cmd, err := commands.NewAssignOrderToRouteCommand(o.ID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	officeRepo := new(MockOfficeRepository)
	routeRepo := new(MockConsolidationRouteRepository)
	uow := new(MockConsolidationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("OfficeRepository").Return(officeRepo).Once(),
		officeRepo.On("Get", mock.Anything, origin.ID()).Return(origin, nil).Once(),
		uow.On("ConsolidationRouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetAllActiveByProvince", mock.Anything, mustProvince(t, "HCM")).
			Return([]*consolidation.Route{other, serving}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConsolidationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderToRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, o.ConsolidationRouteID())
	assert.True(t, o.ConsolidationRouteID().IsEqual(serving.ID()))
}

func TestAssignOrderToRouteCommandHandler_Handle_InactiveRoute(t *testing.T) {
	ctx := t.Context()
	origin := newWardPost(t)
	o := newAcceptedOrder(t, origin)
	route := newTestConsolidationRoute(t, kernel.NewUUID(), "D1001")
	route.Deactivate()
	cmd, err := commands.NewAssignOrderToRouteCommand(o.ID(), routeIDPtr(route.ID()))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	officeRepo := new(MockOfficeRepository)
	routeRepo := new(MockConsolidationRouteRepository)
	uow := new(MockConsolidationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("OfficeRepository").Return(officeRepo).Once(),
		officeRepo.On("Get", mock.Anything, origin.ID()).Return(origin, nil).Once(),
		uow.On("ConsolidationRouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, route.ID()).Return(route, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConsolidationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderToRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, consolidation.ErrRouteIsInactive)
	assert.Nil(t, o.ConsolidationRouteID())
}

func TestAssignOrderToRouteCommandHandler_Handle_WardNotServed(t *testing.T) {
	ctx := t.Context()
	origin := newWardPost(t)
	o := newAcceptedOrder(t, origin)
	route := newTestConsolidationRoute(t, kernel.NewUUID(), "D9009")
	cmd, err := commands.NewAssignOrderToRouteCommand(o.ID(), routeIDPtr(route.ID()))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	officeRepo := new(MockOfficeRepository)
	routeRepo := new(MockConsolidationRouteRepository)
	uow := new(MockConsolidationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("OfficeRepository").Return(officeRepo).Once(),
		officeRepo.On("Get", mock.Anything, origin.ID()).Return(origin, nil).Once(),
		uow.On("ConsolidationRouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, route.ID()).Return(route, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConsolidationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderToRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, o.ConsolidationRouteID())
}

func routeIDPtr(id kernel.UUID) *kernel.UUID { return &id }
