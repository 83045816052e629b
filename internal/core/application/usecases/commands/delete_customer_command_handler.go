package commands

import (
	"context"
	"fmt"
)

// DeleteCustomerCommandHandler handles customer deletion. Deletion fails
// with ErrCustomerHasOrders while any non-cancelled order references the
// customer.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer deletion.
func NewDeleteCustomerCommandHandler(uowFactory CustomerOrderUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete-customer command.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	referenced, err := uow.OrderRepository().ExistsForCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("%w: %s", ErrCustomerHasOrders, cmd.CustomerID().String())
	}

	if err = uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
