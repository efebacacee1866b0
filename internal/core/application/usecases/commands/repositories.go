// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches, so tests can mock exactly what a command needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work-order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// PartRepoFactory provides access to the part repository within a transaction.
	PartRepoFactory interface {
		PartRepository() ports.PartRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// WorkOrderUoW manages transactions for work-order-only operations:
	// status changes, budget approval and rejection, removal.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work-order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// BudgetUoW manages transactions that price a work order: creating an
	// order with items or adding an item later. Pricing touches the order,
	// the part shelves and the service catalog in one transaction.
	BudgetUoW interface {
		TxManager
		WorkOrderRepoFactory
		PartRepoFactory
		CatalogRepoFactory
	}

	// BudgetUoWFactory creates new budget unit of work instances.
	BudgetUoWFactory interface {
		Create() BudgetUoW
	}

	// AttachUoW manages transactions binding a client and vehicle to a
	// work order, verifying both exist.
	AttachUoW interface {
		TxManager
		WorkOrderRepoFactory
		ClientRepoFactory
		VehicleRepoFactory
	}

	// AttachUoWFactory creates new attach unit of work instances.
	AttachUoWFactory interface {
		Create() AttachUoW
	}

	// PartUoW manages transactions for part-only operations.
	PartUoW interface {
		TxManager
		PartRepoFactory
	}

	// PartUoWFactory creates new part unit of work instances.
	PartUoWFactory interface {
		Create() PartUoW
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// VehicleUoW manages transactions registering a vehicle, which also
	// verifies the owning client exists.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
		ClientRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}
)
