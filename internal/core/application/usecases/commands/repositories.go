// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"printshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it actually
// touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SpoolRepoFactory provides access to the spool repository within a transaction.
	SpoolRepoFactory interface {
		SpoolRepository() ports.SpoolRepository
	}

	// PrinterRepoFactory provides access to the printer repository within a transaction.
	PrinterRepoFactory interface {
		PrinterRepository() ports.PrinterRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// WasteRepoFactory provides access to the waste repository within a transaction.
	WasteRepoFactory interface {
		WasteRepository() ports.WasteRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SpoolUoW manages transactions for spool-only operations.
	SpoolUoW interface {
		TxManager
		SpoolRepoFactory
	}

	// SpoolUoWFactory creates new spool unit of work instances.
	SpoolUoWFactory interface {
		Create() SpoolUoW
	}

	// OrderSpoolUoW manages transactions touching an order and the spools
	// its items draw from. Used by item changes, confirmation and
	// cancellation, where the order sheet and the filament ledger must move
	// together.
	OrderSpoolUoW interface {
		TxManager
		OrderRepoFactory
		SpoolRepoFactory
	}

	// OrderSpoolUoWFactory creates new order/spool unit of work instances.
	OrderSpoolUoWFactory interface {
		Create() OrderSpoolUoW
	}

	// OrderPrinterUoW manages transactions for order completion, which
	// records usage on the printers that produced the items.
	OrderPrinterUoW interface {
		TxManager
		OrderRepoFactory
		PrinterRepoFactory
	}

	// OrderPrinterUoWFactory creates new order/printer unit of work instances.
	OrderPrinterUoWFactory interface {
		Create() OrderPrinterUoW
	}

	// SpoolWasteUoW manages transactions for spool archival, which writes
	// the waste record in the same transaction as the status change.
	SpoolWasteUoW interface {
		TxManager
		SpoolRepoFactory
		WasteRepoFactory
	}

	// SpoolWasteUoWFactory creates new spool/waste unit of work instances.
	SpoolWasteUoWFactory interface {
		Create() SpoolWasteUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// CustomerOrderUoW manages transactions for customer deletion, which
	// must check the orders referencing the customer.
	CustomerOrderUoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
	}

	// CustomerOrderUoWFactory creates new customer/order unit of work instances.
	CustomerOrderUoWFactory interface {
		Create() CustomerOrderUoW
	}

	// PrinterUoW manages transactions for printer-only operations.
	PrinterUoW interface {
		TxManager
		PrinterRepoFactory
	}

	// PrinterUoWFactory creates new printer unit of work instances.
	PrinterUoWFactory interface {
		Create() PrinterUoW
	}
)
