package jobs

import (
	"context"
	"log/slog"

	"postal/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ConsolidationJob runs the consolidation sweep on a schedule. Each run
// checks every active consolidation route and consolidates the ones whose
// readiness rule fires.
type ConsolidationJob struct {
	handler commands.ConsolidateReadyRoutesCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewConsolidationJob creates the consolidation sweep job with the given
// cron spec (with seconds field).
func NewConsolidationJob(
	handler commands.ConsolidateReadyRoutesCommandHandler,
	spec string,
	logger *slog.Logger,
) *ConsolidationJob {
	return &ConsolidationJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "consolidation_job"),
	}
}

// Start schedules the consolidation sweep.
func (j *ConsolidationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewConsolidateReadyRoutesCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build consolidation sweep command", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Consolidation sweep failed", "error", err)
			return
		}

		for _, failure := range result.Failures {
			j.logger.WarnContext(ctx, "Route consolidation failed",
				"routeId", failure.RouteID.String(),
				"error", failure.Err,
			)
		}

		if result.RoutesConsolidated > 0 {
			j.logger.InfoContext(ctx, "Consolidation sweep completed",
				"routesChecked", result.RoutesChecked,
				"routesConsolidated", result.RoutesConsolidated,
				"ordersConsolidated", result.OrdersConsolidated,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Consolidation job started", "schedule", j.spec)
	return nil
}

// Stop stops the consolidation job.
func (j *ConsolidationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Consolidation job stopped")
}
