package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"postal/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	consolidationJob *ConsolidationJob
	autoBatchJob     *AutoBatchJob
	batchSealingJob  *BatchSealingJob
}

// JobSettings carries the schedules and thresholds of the background sweeps.
type JobSettings struct {
	ConsolidationSpec string

	AutoBatchSpec        string
	AutoBatchMaxWeightKg float64
	AutoBatchMaxOrders   int

	SealingSpec      string
	SealingMaxAge    time.Duration
	SealingMinOrders int
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	consolidateHandler commands.ConsolidateReadyRoutesCommandHandler,
	autoBatchHandler commands.AutoBatchSweepCommandHandler,
	sealHandler commands.SealReadyBatchesCommandHandler,
	settings JobSettings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		consolidationJob: NewConsolidationJob(consolidateHandler, settings.ConsolidationSpec, logger),
		autoBatchJob: NewAutoBatchJob(autoBatchHandler, settings.AutoBatchSpec,
			settings.AutoBatchMaxWeightKg, nil, settings.AutoBatchMaxOrders, logger),
		batchSealingJob: NewBatchSealingJob(sealHandler, settings.SealingSpec,
			settings.SealingMaxAge, settings.SealingMinOrders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.consolidationJob.Start(); err != nil {
		return fmt.Errorf("failed to start consolidation job: %w", err)
	}

	if err := jm.autoBatchJob.Start(); err != nil {
		jm.consolidationJob.Stop()
		return fmt.Errorf("failed to start auto batch job: %w", err)
	}

	if err := jm.batchSealingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.autoBatchJob.Stop()
		jm.consolidationJob.Stop()
		return fmt.Errorf("failed to start batch sealing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.batchSealingJob.Stop()
	jm.autoBatchJob.Stop()
	jm.consolidationJob.Stop()
}
