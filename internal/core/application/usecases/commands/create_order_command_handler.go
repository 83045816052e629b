package commands

import (
	"context"

	"printshop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening draft
// orders. Allocates the human-facing order number inside the transaction so
// numbers stay gapless per allocation order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	orderNumber, err := orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), orderNumber, cmd.CustomerID(),
		cmd.PaymentMethod(), cmd.IsRnD())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
