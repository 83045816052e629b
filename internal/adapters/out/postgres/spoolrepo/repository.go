package spoolrepo

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/spool"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSpoolRepository implements SpoolRepository using GORM.
type GormSpoolRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSpoolRepository creates a new GORM spool repository.
func NewGormSpoolRepository(db *gorm.DB, tracker aggregateTracker) *GormSpoolRepository {
	return &GormSpoolRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new spool to the database.
func (r *GormSpoolRepository) Add(ctx context.Context, aggregate *spool.Spool) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing spool to the database.
func (r *GormSpoolRepository) Update(ctx context.Context, aggregate *spool.Spool) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update reservations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a spool by ID.
func (r *GormSpoolRepository) Get(ctx context.Context, id kernel.UUID) (*spool.Spool, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SpoolDTO
	if err := r.db.WithContext(ctx).Preload("Reservations").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("spool", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the spools with the given IDs. Every requested spool must
// exist; a missing ID is reported as a not-found error so callers never
// operate on a partial set silently.
func (r *GormSpoolRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*spool.Spool, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []SpoolDTO
	if err := r.db.WithContext(ctx).
		Preload("Reservations").
		Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]SpoolDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	spools := make([]*spool.Spool, 0, len(ids))
	for _, id := range ids {
		dto, ok := found[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("spool", id.String())
		}

		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		spools = append(spools, s)
	}

	return spools, nil
}

// GetAllActive retrieves all spools still in inventory.
func (r *GormSpoolRepository) GetAllActive(ctx context.Context) ([]*spool.Spool, error) {
	var dtos []SpoolDTO
	if err := r.db.WithContext(ctx).
		Preload("Reservations").
		Find(&dtos, "status = ?", int(spool.StatusActive)).Error; err != nil {
		return nil, err
	}

	spools := make([]*spool.Spool, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		spools = append(spools, s)
	}

	return spools, nil
}

// GetAllBelowThreshold retrieves active spools whose remaining weight is below
// the given threshold. Used by archival candidates and the low-stock scan.
func (r *GormSpoolRepository) GetAllBelowThreshold(ctx context.Context, thresholdGrams float64) ([]*spool.Spool, error) {
	var dtos []SpoolDTO
	if err := r.db.WithContext(ctx).
		Preload("Reservations").
		Where("status = ? AND remaining_weight < ?", int(spool.StatusActive), thresholdGrams).
		Order("remaining_weight").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	spools := make([]*spool.Spool, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		spools = append(spools, s)
	}

	return spools, nil
}
