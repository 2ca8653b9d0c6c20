package jobs

import (
	"context"
	"log/slog"

	"postal/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoBatchJob runs the automatic batching sweep on a schedule. Each run
// packs the unbatched parcels of every office pair into batches, opening
// new batches with the configured default limits.
type AutoBatchJob struct {
	handler      commands.AutoBatchSweepCommandHandler
	spec         string
	maxWeightKg  float64
	maxVolumeCm3 *float64
	maxOrders    int
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewAutoBatchJob creates the batching sweep job with the given cron spec
// (with seconds field) and default batch limits.
func NewAutoBatchJob(
	handler commands.AutoBatchSweepCommandHandler,
	spec string,
	maxWeightKg float64,
	maxVolumeCm3 *float64,
	maxOrders int,
	logger *slog.Logger,
) *AutoBatchJob {
	return &AutoBatchJob{
		handler:      handler,
		spec:         spec,
		maxWeightKg:  maxWeightKg,
		maxVolumeCm3: maxVolumeCm3,
		maxOrders:    maxOrders,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "auto_batch_job"),
	}
}

// Start schedules the batching sweep.
func (j *AutoBatchJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		maxOrders := j.maxOrders
		cmd, err := commands.NewAutoBatchSweepCommand(j.maxWeightKg, j.maxVolumeCm3, &maxOrders)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build batching sweep command", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Batching sweep failed", "error", err)
			return
		}

		for _, failure := range result.Failures {
			j.logger.WarnContext(ctx, "Office pair batching failed",
				"officeId", failure.OfficeID.String(),
				"destinationOfficeId", failure.DestinationOfficeID.String(),
				"error", failure.Err,
			)
		}

		if result.PackedCount > 0 {
			j.logger.InfoContext(ctx, "Batching sweep completed",
				"pairsChecked", result.PairsChecked,
				"ordersPacked", result.PackedCount,
				"batchesCreated", result.CreatedBatches,
				"ordersSkipped", result.SkippedCount,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto batch job started",
		"schedule", j.spec, "maxWeightKg", j.maxWeightKg, "maxOrders", j.maxOrders)
	return nil
}

// Stop stops the auto batch job.
func (j *AutoBatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto batch job stopped")
}
