package cmd

import "time"

// Config carries the runtime settings of the application, loaded from the
// environment by the entry point.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ConsolidationCronSpec schedules the consolidation sweep.
	ConsolidationCronSpec string

	// AutoBatchCronSpec schedules the automatic batching sweep.
	AutoBatchCronSpec string

	// AutoBatchMaxWeightKg limits the weight of batches opened by the
	// batching sweep.
	AutoBatchMaxWeightKg float64

	// AutoBatchMaxOrders limits the parcel count of batches opened by the
	// batching sweep.
	AutoBatchMaxOrders int

	// SealingCronSpec schedules the batch sealing sweep.
	SealingCronSpec string

	// SealingMaxAge is how long an open batch may wait before the sweep
	// seals it despite spare capacity.
	SealingMaxAge time.Duration

	// SealingMinOrders is the minimum load an aged batch needs to be
	// sealed by the sweep.
	SealingMinOrders int
}
