package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/spool"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrAddSpoolCommandIsNotConstructed = errors.New(
	"AddSpoolCommand must be created via NewAddSpoolCommand constructor",
)

// AddSpoolCommand represents a request to register a spool entering
// inventory.
type AddSpoolCommand struct { //nolint:recvcheck //using for validation
	spoolID      kernel.UUID
	name         string
	color        string
	brand        string
	filamentType string
	category     spool.Category
	totalWeight  float64

	guard guard.ConstructorGuard
}

// NewAddSpoolCommand creates a command to register a spool.
func NewAddSpoolCommand(
	spoolID kernel.UUID,
	name, color, brand, filamentType string,
	category spool.Category,
	totalWeight float64,
) (AddSpoolCommand, error) {
	cmd := AddSpoolCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSpoolID(spoolID),
		cmd.setColor(color),
		cmd.setCategory(category),
		cmd.setTotalWeight(totalWeight),
	); err != nil {
		return AddSpoolCommand{}, err
	}

	cmd.name = name
	cmd.brand = brand
	cmd.filamentType = filamentType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddSpoolCommand) Validate() error {
	return c.guard.Validate(ErrAddSpoolCommandIsNotConstructed)
}

// SpoolID returns the unique identifier for the new spool.
func (c AddSpoolCommand) SpoolID() kernel.UUID {
	return c.spoolID
}

// Name returns the optional spool label.
func (c AddSpoolCommand) Name() string {
	return c.name
}

// Color returns the filament color.
func (c AddSpoolCommand) Color() string {
	return c.color
}

// Brand returns the filament brand.
func (c AddSpoolCommand) Brand() string {
	return c.brand
}

// FilamentType returns the material type.
func (c AddSpoolCommand) FilamentType() string {
	return c.filamentType
}

// Category returns the cost-attribution category.
func (c AddSpoolCommand) Category() spool.Category {
	return c.category
}

// TotalWeight returns the grams on the spool.
func (c AddSpoolCommand) TotalWeight() float64 {
	return c.totalWeight
}

func (c *AddSpoolCommand) setSpoolID(spoolID kernel.UUID) error {
	if err := spoolID.Validate(); err != nil {
		return err
	}
	c.spoolID = spoolID
	return nil
}

func (c *AddSpoolCommand) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	c.color = color
	return nil
}

func (c *AddSpoolCommand) setCategory(category spool.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *AddSpoolCommand) setTotalWeight(totalWeight float64) error {
	if totalWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalWeight is invalid",
			fmt.Errorf("%v is not greater than 0", totalWeight))
	}
	c.totalWeight = totalWeight
	return nil
}
