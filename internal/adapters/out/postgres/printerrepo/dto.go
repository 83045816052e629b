// Package printerrepo provides data transfer objects and mapping functions
// for printer persistence.
package printerrepo

import (
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"

	"github.com/google/uuid"
)

// PrinterDTO represents the database structure for persisting printer
// aggregates. Usage counters accumulate for the life of the machine; the
// hours-since-change column resets on every nozzle replacement.
type PrinterDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                   string    `gorm:"type:varchar(255);not null"`
	Model                  string    `gorm:"type:varchar(255)"`
	TotalPrintHours        float64   `gorm:"not null"`
	TotalFilamentGrams     float64   `gorm:"not null"`
	NozzleChangeCount      int       `gorm:"type:int;not null"`
	HoursSinceNozzleChange float64   `gorm:"not null"`
	NozzleLifetimeHours    float64   `gorm:"not null"`
}

// TableName specifies the database table name for printer entities.
// Overrides GORM's default naming convention to use "printers".
func (PrinterDTO) TableName() string {
	return "printers"
}

// fromDomain converts a printer domain aggregate to its database representation.
func fromDomain(aggregate *printer.Printer) PrinterDTO {
	return PrinterDTO{
		ID:                     aggregate.ID().Bytes(),
		Name:                   aggregate.Name(),
		Model:                  aggregate.Model(),
		TotalPrintHours:        aggregate.TotalPrintHours(),
		TotalFilamentGrams:     aggregate.TotalFilamentGrams(),
		NozzleChangeCount:      aggregate.NozzleChangeCount(),
		HoursSinceNozzleChange: aggregate.HoursSinceNozzleChange(),
		NozzleLifetimeHours:    aggregate.NozzleLifetimeHours(),
	}
}

// toDomain converts a database DTO to a printer domain aggregate.
func toDomain(dto PrinterDTO) (*printer.Printer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return printer.RestorePrinter(
		id,
		dto.Name, dto.Model,
		dto.TotalPrintHours, dto.TotalFilamentGrams,
		dto.NozzleChangeCount,
		dto.HoursSinceNozzleChange, dto.NozzleLifetimeHours,
	)
}
