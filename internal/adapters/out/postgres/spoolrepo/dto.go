// Package spoolrepo provides data transfer objects and mapping functions for
// spool persistence. This package implements the repository pattern for the
// spool domain aggregate, handling the conversion between domain entities and
// database representations.
package spoolrepo

import (
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/spool"

	"github.com/google/uuid"
)

// SpoolDTO represents the database structure for persisting spool aggregates.
// Weight columns mirror the conservation invariant enforced by the domain:
// reserved <= remaining <= total.
type SpoolDTO struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name            string           `gorm:"type:varchar(255)"`
	Color           string           `gorm:"type:varchar(64);not null"`
	Brand           string           `gorm:"type:varchar(255)"`
	FilamentType    string           `gorm:"type:varchar(64)"`
	Category        int              `gorm:"type:int;not null"`
	TotalWeight     float64          `gorm:"not null"`
	RemainingWeight float64          `gorm:"not null"`
	ReservedWeight  float64          `gorm:"not null"`
	Status          int              `gorm:"type:int;not null;index"`
	Reservations    []ReservationDTO `gorm:"foreignKey:SpoolID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for spool entities.
// Overrides GORM's default naming convention to use "spools".
func (SpoolDTO) TableName() string {
	return "spools"
}

// ReservationDTO represents the database structure for persisting filament
// reservations. Links to spool via foreign key.
type ReservationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpoolID uuid.UUID `gorm:"type:uuid;not null;index"`
	Grams   float64   `gorm:"not null"`
	Status  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for reservation entities.
// Overrides GORM's default naming convention to use "reservations".
func (ReservationDTO) TableName() string {
	return "reservations"
}

// fromDomain converts a spool domain aggregate to its database representation.
func fromDomain(aggregate *spool.Spool) SpoolDTO {
	spoolID := aggregate.ID().Bytes()
	reservations := make([]ReservationDTO, 0, len(aggregate.Reservations()))

	for _, r := range aggregate.Reservations() {
		reservations = append(reservations, ReservationDTO{
			ID:      r.ID().Bytes(),
			SpoolID: spoolID,
			Grams:   r.Grams(),
			Status:  int(r.Status()),
		})
	}

	return SpoolDTO{
		ID:              spoolID,
		Name:            aggregate.Name(),
		Color:           aggregate.Color(),
		Brand:           aggregate.Brand(),
		FilamentType:    aggregate.FilamentType(),
		Category:        int(aggregate.Category()),
		TotalWeight:     aggregate.TotalWeight(),
		RemainingWeight: aggregate.RemainingWeight(),
		ReservedWeight:  aggregate.ReservedWeight(),
		Status:          int(aggregate.Status()),
		Reservations:    reservations,
	}
}

// toDomain converts a database DTO to a spool domain aggregate.
// Reconstructs the complete aggregate including reservations using
// RestoreSpool, which re-checks the conservation invariant.
func toDomain(dto SpoolDTO) (*spool.Spool, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reservations := make([]*spool.Reservation, 0, len(dto.Reservations))
	for _, rDto := range dto.Reservations {
		r, rErr := reservationToDomain(rDto)
		if rErr != nil {
			return nil, rErr
		}
		reservations = append(reservations, r)
	}

	return spool.RestoreSpool(
		id,
		dto.Name, dto.Color, dto.Brand, dto.FilamentType,
		spool.Category(dto.Category),
		dto.TotalWeight, dto.RemainingWeight, dto.ReservedWeight,
		spool.Status(dto.Status),
		reservations,
	)
}

// reservationToDomain converts a reservation DTO to domain entity.
func reservationToDomain(dto ReservationDTO) (*spool.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return spool.RestoreReservation(id, dto.Grams, spool.ReservationStatus(dto.Status))
}
