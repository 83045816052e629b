package wasterepo

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/spool"

	"gorm.io/gorm"
)

// GormWasteRepository implements WasteRepository using GORM.
type GormWasteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWasteRepository creates a new GORM waste repository.
func NewGormWasteRepository(db *gorm.DB, tracker aggregateTracker) *GormWasteRepository {
	return &GormWasteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a waste record.
func (r *GormWasteRepository) Add(ctx context.Context, record *spool.WasteRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetAll retrieves the full filament history, newest first.
func (r *GormWasteRepository) GetAll(ctx context.Context) ([]*spool.WasteRecord, error) {
	var dtos []WasteRecordDTO
	if err := r.db.WithContext(ctx).Order("archived_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*spool.WasteRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
