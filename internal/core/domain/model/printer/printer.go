// Package printer implements the printer usage tracker. Each printer
// accumulates lifetime filament and print-hour totals and counts nozzle
// changes against a configurable lifetime threshold.
package printer

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// DefaultNozzleLifetimeHours is the nozzle lifetime assumed when a printer is
// registered without an explicit threshold.
const DefaultNozzleLifetimeHours = 250.0

// ErrPrinterIsNotConstructed is returned when a Printer instance was not
// created through the NewPrinter or RestorePrinter factory methods.
var ErrPrinterIsNotConstructed = errors.New("Printer must be created via NewPrinter or RestorePrinter constructor")

// Printer is the aggregate root for one physical machine. Usage is recorded
// per completed print; the nozzle counter carries excess hours over into the
// next nozzle's life so long prints are not undercounted.
type Printer struct {
	id    kernel.UUID
	name  string
	model string

	totalPrintHours        float64
	totalFilamentGrams     float64
	nozzleChangeCount      int
	hoursSinceNozzleChange float64
	nozzleLifetimeHours    float64

	isConstructed bool
}

// NewPrinter registers a printer with zeroed usage counters.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: label on the shop floor (required)
//   - model: machine model string
//   - nozzleLifetimeHours: hours a nozzle lasts; 0 uses the default
func NewPrinter(id kernel.UUID, name, model string, nozzleLifetimeHours float64) (*Printer, error) {
	p := &Printer{
		nozzleLifetimeHours: DefaultNozzleLifetimeHours,
		isConstructed:       true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setNozzleLifetimeHours(nozzleLifetimeHours),
	); err != nil {
		return nil, err
	}

	p.model = model
	return p, nil
}

// RestorePrinter reconstructs a printer from persistence.
func RestorePrinter(
	id kernel.UUID,
	name, model string,
	totalPrintHours, totalFilamentGrams float64,
	nozzleChangeCount int,
	hoursSinceNozzleChange, nozzleLifetimeHours float64,
) (*Printer, error) {
	p, err := NewPrinter(id, name, model, nozzleLifetimeHours)
	if err != nil {
		return nil, err
	}

	if totalPrintHours < 0 || totalFilamentGrams < 0 || nozzleChangeCount < 0 || hoursSinceNozzleChange < 0 {
		return nil, errs.NewValueIsInvalidError("usage counters must not be negative")
	}

	p.totalPrintHours = totalPrintHours
	p.totalFilamentGrams = totalFilamentGrams
	p.nozzleChangeCount = nozzleChangeCount
	p.hoursSinceNozzleChange = hoursSinceNozzleChange
	return p, nil
}

// Validate ensures the Printer instance was properly constructed.
func (p *Printer) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPrinterIsNotConstructed
	}
	return nil
}

// IsEqual compares two printers by identity.
func (p *Printer) IsEqual(other *Printer) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the printer's unique identifier.
func (p *Printer) ID() kernel.UUID {
	return p.id
}

// Name returns the shop-floor label.
func (p *Printer) Name() string {
	return p.name
}

// Model returns the machine model string.
func (p *Printer) Model() string {
	return p.model
}

// TotalPrintHours returns the lifetime print hours.
func (p *Printer) TotalPrintHours() float64 {
	return p.totalPrintHours
}

// TotalFilamentGrams returns the lifetime filament throughput.
func (p *Printer) TotalFilamentGrams() float64 {
	return p.totalFilamentGrams
}

// NozzleChangeCount returns how many nozzles the printer has worn out.
func (p *Printer) NozzleChangeCount() int {
	return p.nozzleChangeCount
}

// HoursSinceNozzleChange returns hours on the current nozzle.
func (p *Printer) HoursSinceNozzleChange() float64 {
	return p.hoursSinceNozzleChange
}

// NozzleLifetimeHours returns the configured nozzle lifetime.
func (p *Printer) NozzleLifetimeHours() float64 {
	return p.nozzleLifetimeHours
}

// RecordPrint accumulates one completed print into the usage counters. When
// the hours on the current nozzle cross the lifetime threshold, the change
// counter increments and the excess hours carry over onto the new nozzle.
func (p *Printer) RecordPrint(grams, hours float64) error {
	if grams < 0 {
		return errs.NewValueIsInvalidErrorWithCause("grams is invalid",
			fmt.Errorf("%v is negative", grams))
	}
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("hours is invalid",
			fmt.Errorf("%v is negative", hours))
	}

	p.totalFilamentGrams += grams
	p.totalPrintHours += hours
	p.hoursSinceNozzleChange += hours

	for p.hoursSinceNozzleChange >= p.nozzleLifetimeHours {
		p.nozzleChangeCount++
		p.hoursSinceNozzleChange -= p.nozzleLifetimeHours
	}
	return nil
}

func (p *Printer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Printer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Printer) setNozzleLifetimeHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("nozzle lifetime hours is invalid",
			fmt.Errorf("%v is negative", hours))
	}
	if hours > 0 {
		p.nozzleLifetimeHours = hours
	}
	return nil
}
