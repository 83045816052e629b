package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/pricing"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add a line item to a draft
// order. The filament for the item is reserved on the spool as part of
// handling; a reservation that cannot be placed rejects the whole item.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	spoolID        kernel.UUID
	name           string
	estimatedGrams float64
	quantity       int
	ratePerGram    float64
	printHours     float64
	settings       order.PrintSettings

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to a draft order.
// The rate is validated at this boundary: negative rates are rejected with
// pricing.ErrRateIsInvalid before any spool is touched.
func NewAddOrderItemCommand(
	orderID, spoolID kernel.UUID,
	name string,
	estimatedGrams float64,
	quantity int,
	ratePerGram float64,
	printHours float64,
	settings order.PrintSettings,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSpoolID(spoolID),
		cmd.setEstimatedGrams(estimatedGrams),
		cmd.setQuantity(quantity),
		cmd.setRatePerGram(ratePerGram),
		cmd.setPrintHours(printHours),
		cmd.setSettings(settings),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	cmd.name = name
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SpoolID returns the spool the item draws filament from.
func (c AddOrderItemCommand) SpoolID() kernel.UUID {
	return c.spoolID
}

// Name returns the model label.
func (c AddOrderItemCommand) Name() string {
	return c.name
}

// EstimatedGrams returns the slicer estimate per unit.
func (c AddOrderItemCommand) EstimatedGrams() float64 {
	return c.estimatedGrams
}

// Quantity returns the number of identical units.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// RatePerGram returns the negotiated rate in EGP.
func (c AddOrderItemCommand) RatePerGram() float64 {
	return c.ratePerGram
}

// PrintHours returns the estimated print time per unit.
func (c AddOrderItemCommand) PrintHours() float64 {
	return c.printHours
}

// Settings returns the slicer parameters for the item.
func (c AddOrderItemCommand) Settings() order.PrintSettings {
	return c.settings
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setSpoolID(spoolID kernel.UUID) error {
	if err := spoolID.Validate(); err != nil {
		return err
	}
	c.spoolID = spoolID
	return nil
}

func (c *AddOrderItemCommand) setEstimatedGrams(grams float64) error {
	if grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated grams is invalid",
			fmt.Errorf("%v is not greater than 0", grams))
	}
	c.estimatedGrams = grams
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *AddOrderItemCommand) setRatePerGram(rate float64) error {
	if rate < 0 {
		return fmt.Errorf("%w: %v is negative", pricing.ErrRateIsInvalid, rate)
	}
	c.ratePerGram = rate
	return nil
}

func (c *AddOrderItemCommand) setPrintHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("print hours is invalid",
			fmt.Errorf("%v is negative", hours))
	}
	c.printHours = hours
	return nil
}

func (c *AddOrderItemCommand) setSettings(settings order.PrintSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	c.settings = settings
	return nil
}
