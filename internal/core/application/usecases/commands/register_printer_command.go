package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrRegisterPrinterCommandIsNotConstructed = errors.New(
	"RegisterPrinterCommand must be created via NewRegisterPrinterCommand constructor",
)

// RegisterPrinterCommand represents a request to register a printer on the
// shop floor.
type RegisterPrinterCommand struct { //nolint:recvcheck //using for validation
	printerID           kernel.UUID
	name                string
	model               string
	nozzleLifetimeHours float64

	guard guard.ConstructorGuard
}

// NewRegisterPrinterCommand creates a command to register a printer.
// A nozzle lifetime of 0 uses the default.
func NewRegisterPrinterCommand(
	printerID kernel.UUID,
	name, model string,
	nozzleLifetimeHours float64,
) (RegisterPrinterCommand, error) {
	cmd := RegisterPrinterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrinterID(printerID),
		cmd.setName(name),
		cmd.setNozzleLifetimeHours(nozzleLifetimeHours),
	); err != nil {
		return RegisterPrinterCommand{}, err
	}

	cmd.model = model
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPrinterCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPrinterCommandIsNotConstructed)
}

// PrinterID returns the unique identifier for the new printer.
func (c RegisterPrinterCommand) PrinterID() kernel.UUID {
	return c.printerID
}

// Name returns the shop-floor label.
func (c RegisterPrinterCommand) Name() string {
	return c.name
}

// Model returns the machine model string.
func (c RegisterPrinterCommand) Model() string {
	return c.model
}

// NozzleLifetimeHours returns the configured nozzle lifetime.
func (c RegisterPrinterCommand) NozzleLifetimeHours() float64 {
	return c.nozzleLifetimeHours
}

func (c *RegisterPrinterCommand) setPrinterID(printerID kernel.UUID) error {
	if err := printerID.Validate(); err != nil {
		return err
	}
	c.printerID = printerID
	return nil
}

func (c *RegisterPrinterCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterPrinterCommand) setNozzleLifetimeHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("nozzle lifetime hours is invalid",
			fmt.Errorf("%v is negative", hours))
	}
	c.nozzleLifetimeHours = hours
	return nil
}
