// Package ports defines repository interfaces for the print-shop domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/spool"
)

// SpoolRepository defines the persistence contract for spool aggregates.
// Spools are stored with their reservations; the conservation invariant is
// re-validated on load.
type SpoolRepository interface {
	// Add persists a new spool aggregate to storage.
	Add(ctx context.Context, aggregate *spool.Spool) error

	// Update persists changes to an existing spool aggregate, including its
	// reservations.
	Update(ctx context.Context, aggregate *spool.Spool) error

	// Get retrieves a spool aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*spool.Spool, error)

	// GetMany retrieves several spools in one round trip. Used when an
	// order touches multiple spools in the same transaction.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*spool.Spool, error)

	// GetAllActive retrieves all spools that are not archived.
	GetAllActive(ctx context.Context) ([]*spool.Spool, error)

	// GetAllBelowThreshold retrieves active spools whose remaining weight is
	// below the archive threshold. Used by the low-stock scan.
	GetAllBelowThreshold(ctx context.Context, thresholdGrams float64) ([]*spool.Spool, error)
}

// WasteRepository defines the persistence contract for the append-only
// filament history log. Records are written once at archival and never
// updated.
type WasteRepository interface {
	// Add persists a waste record.
	Add(ctx context.Context, record *spool.WasteRecord) error

	// GetAll retrieves the full filament history, newest first.
	GetAll(ctx context.Context) ([]*spool.WasteRecord, error)
}
