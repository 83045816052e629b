// Package wasterepo provides data transfer objects and mapping functions for
// the filament history log. Waste records are append-only: written once at
// spool archival, never updated.
package wasterepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/spool"

	"github.com/google/uuid"
)

// WasteRecordDTO represents the database structure for persisting waste
// records. Spool name and color are denormalized so the history survives the
// spool row itself.
type WasteRecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpoolID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SpoolName   string    `gorm:"type:varchar(255)"`
	Color       string    `gorm:"type:varchar(64)"`
	UsedWeight  float64   `gorm:"not null"`
	WasteWeight float64   `gorm:"not null"`
	ArchivedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for waste record entities.
// Overrides GORM's default naming convention to use "waste_records".
func (WasteRecordDTO) TableName() string {
	return "waste_records"
}

// fromDomain converts a waste record to its database representation.
func fromDomain(record *spool.WasteRecord) WasteRecordDTO {
	return WasteRecordDTO{
		ID:          record.ID().Bytes(),
		SpoolID:     record.SpoolID().Bytes(),
		SpoolName:   record.SpoolName(),
		Color:       record.Color(),
		UsedWeight:  record.UsedWeight(),
		WasteWeight: record.WasteWeight(),
		ArchivedAt:  record.ArchivedAt(),
	}
}

// toDomain converts a database DTO to a waste record.
func toDomain(dto WasteRecordDTO) (*spool.WasteRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	spoolID, err := kernel.UUIDFromBytes(dto.SpoolID[:])
	if err != nil {
		return nil, err
	}

	return spool.RestoreWasteRecord(
		id, spoolID,
		dto.SpoolName, dto.Color,
		dto.UsedWeight, dto.WasteWeight,
		dto.ArchivedAt,
	)
}
