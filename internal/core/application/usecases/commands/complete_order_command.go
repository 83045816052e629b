package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// ItemResult carries the measured outcome of one printed item: the weight on
// the scale, the hours the printer reported, and which printer produced it.
// PrinterID may be zero when usage is not tracked for the item.
type ItemResult struct {
	ItemID      kernel.UUID
	ActualGrams float64
	PrintHours  float64
	PrinterID   kernel.UUID
}

// CompleteOrderCommand represents a request to finish an order. Item results
// update the billed weights and feed the printer usage tracker; the amount
// received settles the invoice.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	results        []ItemResult
	amountReceived float64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order. Results
// may be empty when nothing was weighed; amountReceived of 0 leaves the
// order unsettled.
func NewCompleteOrderCommand(
	orderID kernel.UUID,
	results []ItemResult,
	amountReceived float64,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setResults(results),
		cmd.setAmountReceived(amountReceived),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Results returns the measured item outcomes.
func (c CompleteOrderCommand) Results() []ItemResult {
	return c.results
}

// AmountReceived returns what the customer paid, 0 when unsettled.
func (c CompleteOrderCommand) AmountReceived() float64 {
	return c.amountReceived
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setResults(results []ItemResult) error {
	for _, r := range results {
		if err := r.ItemID.Validate(); err != nil {
			return fmt.Errorf("itemID: %w", err)
		}
		if r.ActualGrams <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("actual grams is invalid",
				fmt.Errorf("%v is not greater than 0", r.ActualGrams))
		}
		if r.PrintHours < 0 {
			return errs.NewValueIsInvalidErrorWithCause("print hours is invalid",
				fmt.Errorf("%v is negative", r.PrintHours))
		}
	}
	c.results = results
	return nil
}

func (c *CompleteOrderCommand) setAmountReceived(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount received is invalid",
			fmt.Errorf("%v is negative", amount))
	}
	c.amountReceived = amount
	return nil
}
