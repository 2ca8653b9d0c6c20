package commands_test

import (
	"context"
	"errors"
	"time"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/batch"
	"postal/internal/core/domain/model/consolidation"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/domain/model/order"
	"postal/internal/core/domain/model/transfer"
	"postal/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var errNotImplemented = errors.New("not implemented in mock")

type MockOfficeRepository struct{ mock.Mock }

func (m *MockOfficeRepository) Add(ctx context.Context, o *office.Office) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOfficeRepository) Update(ctx context.Context, o *office.Office) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*office.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.Office), args.Error(1)
}
func (m *MockOfficeRepository) GetAll(_ context.Context) ([]*office.Office, error) {
	return nil, errNotImplemented
}
func (m *MockOfficeRepository) GetFirstByProvinceAndType(
	ctx context.Context, provinceCode kernel.ProvinceCode, officeType office.Type,
) (*office.Office, error) {
	args := m.Called(ctx, provinceCode, officeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*office.Office), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllPendingByConsolidationRoute(
	ctx context.Context, routeID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByBatch(ctx context.Context, batchID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllBatchableAtOffice(
	ctx context.Context, officeID, destinationOfficeID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, officeID, destinationOfficeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBatchableOfficePairs(ctx context.Context) ([]ports.BatchableOfficePair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.BatchableOfficePair), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}
func (m *MockBatchRepository) GetAllModifiableByOfficePair(
	ctx context.Context, originOfficeID, destinationOfficeID kernel.UUID,
) ([]*batch.Batch, error) {
	args := m.Called(ctx, originOfficeID, destinationOfficeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*batch.Batch), args.Error(1)
}
func (m *MockBatchRepository) GetAllOutstandingBetweenRegions(
	ctx context.Context, fromRegionID, toRegionID kernel.RegionID,
) ([]*batch.Batch, error) {
	args := m.Called(ctx, fromRegionID, toRegionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*batch.Batch), args.Error(1)
}
func (m *MockBatchRepository) GetAllSealableOlderThan(
	ctx context.Context, cutoff time.Time, minOrders int,
) ([]*batch.Batch, error) {
	args := m.Called(ctx, cutoff, minOrders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*batch.Batch), args.Error(1)
}

type MockConsolidationRouteRepository struct{ mock.Mock }

func (m *MockConsolidationRouteRepository) Add(ctx context.Context, r *consolidation.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockConsolidationRouteRepository) Update(ctx context.Context, r *consolidation.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockConsolidationRouteRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.Route), args.Error(1)
}
func (m *MockConsolidationRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockConsolidationRouteRepository) GetAllActive(ctx context.Context) ([]*consolidation.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*consolidation.Route), args.Error(1)
}
func (m *MockConsolidationRouteRepository) GetAllActiveByProvince(
	ctx context.Context, provinceCode kernel.ProvinceCode,
) ([]*consolidation.Route, error) {
	args := m.Called(ctx, provinceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*consolidation.Route), args.Error(1)
}

type MockTransferRouteRepository struct{ mock.Mock }

func (m *MockTransferRouteRepository) Add(ctx context.Context, r *transfer.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockTransferRouteRepository) Update(ctx context.Context, r *transfer.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockTransferRouteRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Route), args.Error(1)
}
func (m *MockTransferRouteRepository) GetByHubPair(
	ctx context.Context, fromHubID, toHubID kernel.UUID,
) (*transfer.Route, error) {
	args := m.Called(ctx, fromHubID, toHubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Route), args.Error(1)
}
func (m *MockTransferRouteRepository) GetAllActive(ctx context.Context) ([]*transfer.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transfer.Route), args.Error(1)
}

type MockDisruptionRepository struct{ mock.Mock }

func (m *MockDisruptionRepository) Add(ctx context.Context, d *transfer.Disruption) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDisruptionRepository) Update(ctx context.Context, d *transfer.Disruption) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDisruptionRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Disruption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Disruption), args.Error(1)
}
func (m *MockDisruptionRepository) GetActiveByRoute(
	ctx context.Context, routeID kernel.UUID,
) (*transfer.Disruption, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.Disruption), args.Error(1)
}
func (m *MockDisruptionRepository) GetAllActive(_ context.Context) ([]*transfer.Disruption, error) {
	return nil, errNotImplemented
}
func (m *MockDisruptionRepository) GetAllByRoute(_ context.Context, _ kernel.UUID) ([]*transfer.Disruption, error) {
	return nil, errNotImplemented
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOfficeUoW struct{ mockTx }

func (m *MockOfficeUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

type MockOfficeUoWFactory struct{ mock.Mock }

func (m *MockOfficeUoWFactory) Create() commands.OfficeUoW {
	args := m.Called()
	return args.Get(0).(commands.OfficeUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockConsolidationUoW struct{ mockTx }

func (m *MockConsolidationUoW) ConsolidationRouteRepository() ports.ConsolidationRouteRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsolidationRouteRepository)
}
func (m *MockConsolidationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockConsolidationUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

type MockConsolidationUoWFactory struct{ mock.Mock }

func (m *MockConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	args := m.Called()
	return args.Get(0).(commands.ConsolidationUoW)
}

type MockBatchUoW struct{ mockTx }

func (m *MockBatchUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}
func (m *MockBatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockBatchUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

type MockBatchUoWFactory struct{ mock.Mock }

func (m *MockBatchUoWFactory) Create() commands.BatchUoW {
	args := m.Called()
	return args.Get(0).(commands.BatchUoW)
}

type MockTransferUoW struct{ mockTx }

func (m *MockTransferUoW) TransferRouteRepository() ports.TransferRouteRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferRouteRepository)
}
func (m *MockTransferUoW) DisruptionRepository() ports.DisruptionRepository {
	args := m.Called()
	return args.Get(0).(ports.DisruptionRepository)
}
func (m *MockTransferUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}
func (m *MockTransferUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

type MockTransferUoWFactory struct{ mock.Mock }

func (m *MockTransferUoWFactory) Create() commands.TransferUoW {
	args := m.Called()
	return args.Get(0).(commands.TransferUoW)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, event ports.NotificationEvent) {
	m.Called(ctx, event)
}
