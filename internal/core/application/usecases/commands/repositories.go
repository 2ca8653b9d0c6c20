// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"postal/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OfficeRepoFactory provides access to the office repository within a transaction.
	OfficeRepoFactory interface {
		OfficeRepository() ports.OfficeRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// ConsolidationRouteRepoFactory provides access to the consolidation route repository within a transaction.
	ConsolidationRouteRepoFactory interface {
		ConsolidationRouteRepository() ports.ConsolidationRouteRepository
	}

	// TransferRouteRepoFactory provides access to the transfer route repository within a transaction.
	TransferRouteRepoFactory interface {
		TransferRouteRepository() ports.TransferRouteRepository
	}

	// DisruptionRepoFactory provides access to the disruption repository within a transaction.
	DisruptionRepoFactory interface {
		DisruptionRepository() ports.DisruptionRepository
	}

	// OfficeUoW manages transactions for office-only operations.
	OfficeUoW interface {
		TxManager
		OfficeRepoFactory
	}

	// OfficeUoWFactory creates new office unit of work instances.
	OfficeUoWFactory interface {
		Create() OfficeUoW
	}

	// OrderUoW manages transactions for order registration, which also
	// reads offices to validate the origin and destination.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OfficeRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ConsolidationUoW manages transactions for consolidation operations:
	// route administration, order assignment, and sweeps.
	ConsolidationUoW interface {
		TxManager
		ConsolidationRouteRepoFactory
		OrderRepoFactory
		OfficeRepoFactory
	}

	// ConsolidationUoWFactory creates new consolidation unit of work instances.
	ConsolidationUoWFactory interface {
		Create() ConsolidationUoW
	}

	// BatchUoW manages transactions for batch lifecycle operations,
	// which modify batches and their contained orders together.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
		OrderRepoFactory
		OfficeRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// TransferUoW manages transactions for transfer graph administration:
	// route creation and disruption handling, which snapshots batches.
	TransferUoW interface {
		TxManager
		TransferRouteRepoFactory
		DisruptionRepoFactory
		BatchRepoFactory
		OfficeRepoFactory
	}

	// TransferUoWFactory creates new transfer unit of work instances.
	TransferUoWFactory interface {
		Create() TransferUoW
	}
)
