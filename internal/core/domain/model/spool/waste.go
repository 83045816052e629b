package spool

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
)

// ErrWasteRecordIsNotConstructed is returned when a WasteRecord was not
// created through NewWasteRecord or RestoreWasteRecord.
var ErrWasteRecordIsNotConstructed = errors.New(
	"WasteRecord must be created via NewWasteRecord or RestoreWasteRecord")

// WasteRecord is the append-only filament history entry written when a spool
// is archived. It is write-once: the record is produced by Spool.Archive and
// never mutated afterwards.
type WasteRecord struct {
	id          kernel.UUID
	spoolID     kernel.UUID
	spoolName   string
	color       string
	usedWeight  float64
	wasteWeight float64
	archivedAt  time.Time

	isConstructed bool
}

// NewWasteRecord creates a waste record for an archived spool. The waste
// weight is whatever remained on the spool at archive time.
func NewWasteRecord(
	id, spoolID kernel.UUID,
	spoolName, color string,
	usedWeight, wasteWeight float64,
) (*WasteRecord, error) {
	if err := errors.Join(id.Validate(), spoolID.Validate()); err != nil {
		return nil, err
	}

	return &WasteRecord{
		id:            id,
		spoolID:       spoolID,
		spoolName:     spoolName,
		color:         color,
		usedWeight:    usedWeight,
		wasteWeight:   wasteWeight,
		archivedAt:    time.Now(),
		isConstructed: true,
	}, nil
}

// RestoreWasteRecord reconstructs a waste record from persistence.
func RestoreWasteRecord(
	id, spoolID kernel.UUID,
	spoolName, color string,
	usedWeight, wasteWeight float64,
	archivedAt time.Time,
) (*WasteRecord, error) {
	if err := errors.Join(id.Validate(), spoolID.Validate()); err != nil {
		return nil, err
	}

	return &WasteRecord{
		id:            id,
		spoolID:       spoolID,
		spoolName:     spoolName,
		color:         color,
		usedWeight:    usedWeight,
		wasteWeight:   wasteWeight,
		archivedAt:    archivedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was properly constructed.
func (w *WasteRecord) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWasteRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (w *WasteRecord) ID() kernel.UUID { return w.id }

// SpoolID returns the archived spool's identifier.
func (w *WasteRecord) SpoolID() kernel.UUID { return w.spoolID }

// SpoolName returns the archived spool's display name.
func (w *WasteRecord) SpoolName() string { return w.spoolName }

// Color returns the archived spool's filament color.
func (w *WasteRecord) Color() string { return w.color }

// UsedWeight returns the grams consumed over the spool's lifetime.
func (w *WasteRecord) UsedWeight() float64 { return w.usedWeight }

// WasteWeight returns the unusable grams left when the spool was archived.
func (w *WasteRecord) WasteWeight() float64 { return w.wasteWeight }

// ArchivedAt returns when the spool was archived.
func (w *WasteRecord) ArchivedAt() time.Time { return w.archivedAt }
