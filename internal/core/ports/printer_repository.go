package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"
)

// PrinterRepository defines the persistence contract for printer aggregates.
type PrinterRepository interface {
	// Add persists a new printer aggregate to storage.
	Add(ctx context.Context, aggregate *printer.Printer) error

	// Update persists changes to an existing printer aggregate.
	Update(ctx context.Context, aggregate *printer.Printer) error

	// Get retrieves a printer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*printer.Printer, error)

	// GetAll retrieves every registered printer.
	GetAll(ctx context.Context) ([]*printer.Printer, error)
}
