// Package jobs provides scheduled background tasks for the postal system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for parcel flow.
//
// # Available Jobs
//
// 1. ConsolidationJob - Sweeps the active consolidation routes and runs every
// route whose readiness rule fires, moving pending parcels to their province
// warehouse.
//
// 2. AutoBatchJob - Packs the unbatched parcels of every office pair into
// capacity-bounded batches using first-fit-decreasing.
//
// 3. BatchSealingJob - Seals aged open batches that hold enough parcels so
// shipments leave even when a batch never fills its capacity.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(consolidateHandler, autoBatchHandler, sealHandler, settings, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed run never
// stops the schedule. Failed job starts stop any already running jobs.
package jobs
