package printer_test

import (
	"testing"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(t *testing.T, nozzleLifetime float64) *printer.Printer {
	t.Helper()
	p, err := printer.NewPrinter(kernel.NewUUID(), "Ender-3 left", "Ender 3 V2", nozzleLifetime)
	require.NoError(t, err)
	return p
}

func TestNewPrinter(t *testing.T) {
	t.Run("should create printer with zeroed counters", func(t *testing.T) {
		p := newTestPrinter(t, 0)

		require.NoError(t, p.Validate())
		assert.Equal(t, 0.0, p.TotalPrintHours())
		assert.Equal(t, 0.0, p.TotalFilamentGrams())
		assert.Equal(t, 0, p.NozzleChangeCount())
		assert.Equal(t, printer.DefaultNozzleLifetimeHours, p.NozzleLifetimeHours())
	})

	t.Run("explicit nozzle lifetime overrides the default", func(t *testing.T) {
		p := newTestPrinter(t, 100)

		assert.Equal(t, 100.0, p.NozzleLifetimeHours())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := printer.NewPrinter(kernel.NewUUID(), "", "Ender 3 V2", 0)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p printer.Printer

		assert.Equal(t, printer.ErrPrinterIsNotConstructed, p.Validate())
	})
}

func TestPrinter_RecordPrint(t *testing.T) {
	t.Run("accumulates totals", func(t *testing.T) {
		p := newTestPrinter(t, 100)

		require.NoError(t, p.RecordPrint(182, 10))
		require.NoError(t, p.RecordPrint(50, 4.5))

		assert.Equal(t, 232.0, p.TotalFilamentGrams())
		assert.Equal(t, 14.5, p.TotalPrintHours())
		assert.Equal(t, 14.5, p.HoursSinceNozzleChange())
		assert.Equal(t, 0, p.NozzleChangeCount())
	})

	t.Run("crossing the threshold counts a nozzle change with carry-over", func(t *testing.T) {
		p := newTestPrinter(t, 100)
		require.NoError(t, p.RecordPrint(500, 90))

		require.NoError(t, p.RecordPrint(200, 25))

		assert.Equal(t, 1, p.NozzleChangeCount())
		assert.InDelta(t, 15.0, p.HoursSinceNozzleChange(), 1e-9)
		assert.Equal(t, 115.0, p.TotalPrintHours())
	})

	t.Run("one long print can wear out several nozzles", func(t *testing.T) {
		p := newTestPrinter(t, 100)

		require.NoError(t, p.RecordPrint(5000, 250))

		assert.Equal(t, 2, p.NozzleChangeCount())
		assert.InDelta(t, 50.0, p.HoursSinceNozzleChange(), 1e-9)
	})

	t.Run("rejects negative usage", func(t *testing.T) {
		p := newTestPrinter(t, 100)

		require.Error(t, p.RecordPrint(-1, 5))
		require.Error(t, p.RecordPrint(5, -1))
	})
}

func TestRestorePrinter(t *testing.T) {
	t.Run("restores counters and keeps counting", func(t *testing.T) {
		p, err := printer.RestorePrinter(kernel.NewUUID(), "Ender-3 left", "Ender 3 V2",
			115, 700, 1, 15, 100)
		require.NoError(t, err)

		require.NoError(t, p.RecordPrint(100, 85))

		assert.Equal(t, 2, p.NozzleChangeCount())
		assert.InDelta(t, 0.0, p.HoursSinceNozzleChange(), 1e-9)
	})

	t.Run("rejects negative counters", func(t *testing.T) {
		_, err := printer.RestorePrinter(kernel.NewUUID(), "Ender-3 left", "Ender 3 V2",
			-1, 0, 0, 0, 0)

		require.Error(t, err)
	})
}
