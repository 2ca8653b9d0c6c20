package jobs

import (
	"context"
	"log/slog"
	"time"

	"postal/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BatchSealingJob seals aged batches on a schedule so parcels do not wait
// indefinitely for a full load. Only batches older than maxAge that hold at
// least minOrders parcels are sealed.
type BatchSealingJob struct {
	handler   commands.SealReadyBatchesCommandHandler
	spec      string
	maxAge    time.Duration
	minOrders int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewBatchSealingJob creates the batch sealing job with the given cron spec
// (with seconds field) and sealing thresholds.
func NewBatchSealingJob(
	handler commands.SealReadyBatchesCommandHandler,
	spec string,
	maxAge time.Duration,
	minOrders int,
	logger *slog.Logger,
) *BatchSealingJob {
	return &BatchSealingJob{
		handler:   handler,
		spec:      spec,
		maxAge:    maxAge,
		minOrders: minOrders,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "batch_sealing_job"),
	}
}

// Start schedules the sealing sweep.
func (j *BatchSealingJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewSealReadyBatchesCommand(j.maxAge, j.minOrders)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build sealing sweep command", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Batch sealing sweep failed", "error", err)
			return
		}

		if result.BatchesSealed > 0 {
			j.logger.InfoContext(ctx, "Batch sealing sweep completed",
				"batchesSealed", result.BatchesSealed,
				"ordersSorted", result.OrdersSorted,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Batch sealing job started",
		"schedule", j.spec, "maxAge", j.maxAge, "minOrders", j.minOrders)
	return nil
}

// Stop stops the batch sealing job.
func (j *BatchSealingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Batch sealing job stopped")
}
