package cmd

import (
	"log/slog"

	"postal/internal/adapters/out/notify"
	"postal/internal/adapters/out/postgres"
	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/services"
	"postal/internal/core/ports"
	"postal/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.NotificationDispatcher
}

// NewCompositionRoot builds the object graph from the database connection
// and the structured logger.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogDispatcher(logger),
	}
}

func (c *CompositionRoot) officeUoWFactory() commands.OfficeUoWFactory {
	return FuncOfficeUoWFactory(func() commands.OfficeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) consolidationUoWFactory() commands.ConsolidationUoWFactory {
	return FuncConsolidationUoWFactory(func() commands.ConsolidationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transferUoWFactory() commands.TransferUoWFactory {
	return FuncTransferUoWFactory(func() commands.TransferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOfficeCommandHandler() commands.CreateOfficeCommandHandler {
	return commands.NewCreateOfficeCommandHandler(c.officeUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderToRouteCommandHandler() commands.AssignOrderToRouteCommandHandler {
	return commands.NewAssignOrderToRouteCommandHandler(c.consolidationUoWFactory())
}

func (c *CompositionRoot) CreateCreateConsolidationRouteCommandHandler() commands.CreateConsolidationRouteCommandHandler {
	return commands.NewCreateConsolidationRouteCommandHandler(c.consolidationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateConsolidationRouteCommandHandler() commands.UpdateConsolidationRouteCommandHandler {
	return commands.NewUpdateConsolidationRouteCommandHandler(c.consolidationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteConsolidationRouteCommandHandler() commands.DeleteConsolidationRouteCommandHandler {
	return commands.NewDeleteConsolidationRouteCommandHandler(c.consolidationUoWFactory())
}

func (c *CompositionRoot) CreateConsolidateRouteCommandHandler() commands.ConsolidateRouteCommandHandler {
	return commands.NewConsolidateRouteCommandHandler(c.consolidationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConsolidateReadyRoutesCommandHandler() commands.ConsolidateReadyRoutesCommandHandler {
	return commands.NewConsolidateReadyRoutesCommandHandler(c.consolidationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	return commands.NewCreateBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateAddOrdersToBatchCommandHandler() commands.AddOrdersToBatchCommandHandler {
	return commands.NewAddOrdersToBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderFromBatchCommandHandler() commands.RemoveOrderFromBatchCommandHandler {
	return commands.NewRemoveOrderFromBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateAutoBatchOrdersCommandHandler() commands.AutoBatchOrdersCommandHandler {
	return commands.NewAutoBatchOrdersCommandHandler(c.batchUoWFactory(), services.NewBatchPacker())
}

func (c *CompositionRoot) CreateAutoBatchSweepCommandHandler() commands.AutoBatchSweepCommandHandler {
	return commands.NewAutoBatchSweepCommandHandler(c.batchUoWFactory(), c.CreateAutoBatchOrdersCommandHandler())
}

func (c *CompositionRoot) CreateSealBatchCommandHandler() commands.SealBatchCommandHandler {
	return commands.NewSealBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateSealReadyBatchesCommandHandler() commands.SealReadyBatchesCommandHandler {
	return commands.NewSealReadyBatchesCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateDepartBatchCommandHandler() commands.DepartBatchCommandHandler {
	return commands.NewDepartBatchCommandHandler(c.batchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateArriveBatchCommandHandler() commands.ArriveBatchCommandHandler {
	return commands.NewArriveBatchCommandHandler(c.batchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDistributeBatchCommandHandler() commands.DistributeBatchCommandHandler {
	return commands.NewDistributeBatchCommandHandler(c.batchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelBatchCommandHandler() commands.CancelBatchCommandHandler {
	return commands.NewCancelBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateCreateTransferRouteCommandHandler() commands.CreateTransferRouteCommandHandler {
	return commands.NewCreateTransferRouteCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateDisableRouteCommandHandler() commands.DisableRouteCommandHandler {
	return commands.NewDisableRouteCommandHandler(c.transferUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateEnableRouteCommandHandler() commands.EnableRouteCommandHandler {
	return commands.NewEnableRouteCommandHandler(c.transferUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateComputeRouteQueryHandler() queries.ComputeRouteQueryHandler {
	return queries.NewComputeRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePreviewDisableImpactQueryHandler() queries.PreviewDisableImpactQueryHandler {
	return queries.NewPreviewDisableImpactQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDisruptionsQueryHandler() queries.GetActiveDisruptionsQueryHandler {
	return queries.NewGetActiveDisruptionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteDisruptionHistoryQueryHandler() queries.GetRouteDisruptionHistoryQueryHandler {
	return queries.NewGetRouteDisruptionHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConsolidationBacklogQueryHandler() queries.GetConsolidationBacklogQueryHandler {
	return queries.NewGetConsolidationBacklogQueryHandler(c.gormDB)
}

// CreateJobManager wires the background sweeps with their schedules.
func (c *CompositionRoot) CreateJobManager(config Config, logger *slog.Logger) *jobs.JobManager {
	settings := jobs.JobSettings{
		ConsolidationSpec:    config.ConsolidationCronSpec,
		AutoBatchSpec:        config.AutoBatchCronSpec,
		AutoBatchMaxWeightKg: config.AutoBatchMaxWeightKg,
		AutoBatchMaxOrders:   config.AutoBatchMaxOrders,
		SealingSpec:          config.SealingCronSpec,
		SealingMaxAge:        config.SealingMaxAge,
		SealingMinOrders:     config.SealingMinOrders,
	}

	return jobs.NewJobManager(
		c.CreateConsolidateReadyRoutesCommandHandler(),
		c.CreateAutoBatchSweepCommandHandler(),
		c.CreateSealReadyBatchesCommandHandler(),
		settings,
		logger,
	)
}

type FuncOfficeUoWFactory func() commands.OfficeUoW

func (f FuncOfficeUoWFactory) Create() commands.OfficeUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncConsolidationUoWFactory func() commands.ConsolidationUoW

func (f FuncConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncTransferUoWFactory func() commands.TransferUoW

func (f FuncTransferUoWFactory) Create() commands.TransferUoW {
	return f()
}
