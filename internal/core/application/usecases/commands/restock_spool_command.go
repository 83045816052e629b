package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrRestockSpoolCommandIsNotConstructed = errors.New(
	"RestockSpoolCommand must be created via NewRestockSpoolCommand constructor",
)

// RestockSpoolCommand represents an explicit operator action adding filament
// to a spool, e.g. after re-weighing.
type RestockSpoolCommand struct { //nolint:recvcheck //using for validation
	spoolID kernel.UUID
	grams   float64

	guard guard.ConstructorGuard
}

// NewRestockSpoolCommand creates a command to restock a spool.
func NewRestockSpoolCommand(spoolID kernel.UUID, grams float64) (RestockSpoolCommand, error) {
	cmd := RestockSpoolCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSpoolID(spoolID),
		cmd.setGrams(grams),
	); err != nil {
		return RestockSpoolCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockSpoolCommand) Validate() error {
	return c.guard.Validate(ErrRestockSpoolCommandIsNotConstructed)
}

// SpoolID returns the spool to restock.
func (c RestockSpoolCommand) SpoolID() kernel.UUID {
	return c.spoolID
}

// Grams returns the grams to add.
func (c RestockSpoolCommand) Grams() float64 {
	return c.grams
}

func (c *RestockSpoolCommand) setSpoolID(spoolID kernel.UUID) error {
	if err := spoolID.Validate(); err != nil {
		return err
	}
	c.spoolID = spoolID
	return nil
}

func (c *RestockSpoolCommand) setGrams(grams float64) error {
	if grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("grams is invalid",
			fmt.Errorf("%v is not greater than 0", grams))
	}
	c.grams = grams
	return nil
}
