package printerrepo

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPrinterRepository implements PrinterRepository using GORM.
type GormPrinterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPrinterRepository creates a new GORM printer repository.
func NewGormPrinterRepository(db *gorm.DB, tracker aggregateTracker) *GormPrinterRepository {
	return &GormPrinterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new printer to the database.
func (r *GormPrinterRepository) Add(ctx context.Context, aggregate *printer.Printer) error {
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

// Update saves an existing printer to the database.
func (r *GormPrinterRepository) Update(ctx context.Context, aggregate *printer.Printer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a printer by ID.
func (r *GormPrinterRepository) Get(ctx context.Context, id kernel.UUID) (*printer.Printer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrinterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("printer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered printer.
func (r *GormPrinterRepository) GetAll(ctx context.Context) ([]*printer.Printer, error) {
	var dtos []PrinterDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	printers := make([]*printer.Printer, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		printers = append(printers, p)
	}

	return printers, nil
}
