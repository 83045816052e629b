package order

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/pricing"
	"printshop/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// PrintSettings captures the slicer parameters a unit is printed with. The
// zero value means the defaults of the shop's slicer profile.
type PrintSettings struct {
	LayerHeightMM float64
	InfillPercent int
}

// Validate rejects settings outside the physically printable range.
func (p PrintSettings) Validate() error {
	if p.LayerHeightMM < 0 {
		return errs.NewValueIsInvalidErrorWithCause("layer height is invalid",
			fmt.Errorf("%v is negative", p.LayerHeightMM))
	}
	if p.InfillPercent < 0 || p.InfillPercent > 100 {
		return errs.NewValueIsOutOfRangeError("infill percent", p.InfillPercent, 0, 100)
	}
	return nil
}

// Item is one line of an order: a model printed in some quantity from one
// spool. It carries the reservation handle that holds its filament and the
// weights and rate the pricing engine bills from.
//
// Item references its spool, reservation and printer by ID only. The spool
// aggregate stays the single owner of reservation state.
type Item struct {
	id            kernel.UUID
	spoolID       kernel.UUID
	reservationID kernel.UUID
	printerID     *kernel.UUID

	name            string
	estimatedWeight float64
	actualWeight    float64
	quantity        int
	ratePerGram     float64
	printHours      float64
	actualHours     float64
	settings        PrintSettings

	isConstructed bool
}

// NewItem creates an order item with its filament already reserved.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - spoolID: the spool the filament is drawn from
//   - reservationID: the hold placed on that spool for this item
//   - name: model label shown on the order sheet
//   - estimatedGrams: slicer estimate per unit (must be positive)
//   - quantity: identical units (must be positive)
//   - ratePerGram: negotiated rate in EGP (must not be negative)
//   - printHours: estimated print time per unit
//   - settings: slicer parameters, zero value for profile defaults
func NewItem(
	id, spoolID, reservationID kernel.UUID,
	name string,
	estimatedGrams float64,
	quantity int,
	ratePerGram float64,
	printHours float64,
	settings PrintSettings,
) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setSpoolID(spoolID),
		item.setReservationID(reservationID),
		item.setEstimatedWeight(estimatedGrams),
		item.setQuantity(quantity),
		item.setRatePerGram(ratePerGram),
		item.setPrintHours(printHours),
		item.setSettings(settings),
	); err != nil {
		return nil, err
	}

	item.name = name
	return item, nil
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(
	id, spoolID, reservationID kernel.UUID,
	printerID *kernel.UUID,
	name string,
	estimatedGrams, actualGrams float64,
	quantity int,
	ratePerGram float64,
	printHours, actualHours float64,
	settings PrintSettings,
) (*Item, error) {
	item, err := NewItem(id, spoolID, reservationID, name,
		estimatedGrams, quantity, ratePerGram, printHours, settings)
	if err != nil {
		return nil, err
	}

	if actualGrams < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("actual weight is invalid",
			fmt.Errorf("%v is negative", actualGrams))
	}
	if actualHours < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("actual hours is invalid",
			fmt.Errorf("%v is negative", actualHours))
	}
	if printerID != nil {
		if err = printerID.Validate(); err != nil {
			return nil, err
		}
	}

	item.actualWeight = actualGrams
	item.actualHours = actualHours
	item.printerID = printerID
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SpoolID returns the spool this item draws filament from.
func (i *Item) SpoolID() kernel.UUID {
	return i.spoolID
}

// ReservationID returns the handle of the filament hold backing this item.
func (i *Item) ReservationID() kernel.UUID {
	return i.reservationID
}

// Printer returns the assigned printer's ID, nil when unassigned.
func (i *Item) Printer() *kernel.UUID {
	return i.printerID
}

// Name returns the model label.
func (i *Item) Name() string {
	return i.name
}

// EstimatedWeight returns the slicer estimate in grams per unit.
func (i *Item) EstimatedWeight() float64 {
	return i.estimatedWeight
}

// ActualWeight returns the measured weight in grams per unit, 0 while the
// print has not been weighed.
func (i *Item) ActualWeight() float64 {
	return i.actualWeight
}

// Quantity returns the number of identical units.
func (i *Item) Quantity() int {
	return i.quantity
}

// RatePerGram returns the negotiated rate in EGP.
func (i *Item) RatePerGram() float64 {
	return i.ratePerGram
}

// PrintHours returns the estimated print time per unit.
func (i *Item) PrintHours() float64 {
	return i.printHours
}

// ActualHours returns the measured print time per unit, 0 while the print
// has not been timed.
func (i *Item) ActualHours() float64 {
	return i.actualHours
}

// BillableHours returns the print time a unit is billed at: the measured
// time once known, the estimate before that.
func (i *Item) BillableHours() float64 {
	if i.actualHours > 0 {
		return i.actualHours
	}
	return i.printHours
}

// Settings returns the slicer parameters for this item.
func (i *Item) Settings() PrintSettings {
	return i.settings
}

// AssignPrinter records which printer the item is produced on.
func (i *Item) AssignPrinter(printerID kernel.UUID) error {
	if err := printerID.Validate(); err != nil {
		return err
	}
	i.printerID = &printerID
	return nil
}

// RecordActualWeight stores the measured weight of the finished print. The
// pricing engine bills the measured weight from this point on.
func (i *Item) RecordActualWeight(grams float64) error {
	if grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actual weight is invalid",
			fmt.Errorf("%v is not greater than 0", grams))
	}
	i.actualWeight = grams
	return nil
}

// RecordActualHours stores the measured print time of the finished print.
// Electricity is billed from the measured time from this point on.
func (i *Item) RecordActualHours(hours float64) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actual hours is invalid",
			fmt.Errorf("%v is not greater than 0", hours))
	}
	i.actualHours = hours
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSpoolID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("spoolID: %w", err)
	}
	i.spoolID = id
	return nil
}

func (i *Item) setReservationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("reservationID: %w", err)
	}
	i.reservationID = id
	return nil
}

func (i *Item) setEstimatedWeight(grams float64) error {
	if grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated weight is invalid",
			fmt.Errorf("%v is not greater than 0", grams))
	}
	i.estimatedWeight = grams
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setRatePerGram(rate float64) error {
	if rate < 0 {
		return fmt.Errorf("%w: %v is negative", pricing.ErrRateIsInvalid, rate)
	}
	i.ratePerGram = rate
	return nil
}

func (i *Item) setPrintHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("print hours is invalid",
			fmt.Errorf("%v is negative", hours))
	}
	i.printHours = hours
	return nil
}

func (i *Item) setSettings(settings PrintSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	i.settings = settings
	return nil
}
