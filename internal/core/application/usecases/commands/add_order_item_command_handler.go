package commands

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler handles adding a line item to a draft order.
// The spool reservation and the order item are persisted in one transaction:
// either the filament is held and the item is on the sheet, or neither.
type AddOrderItemCommandHandler struct {
	uowFactory OrderSpoolUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory OrderSpoolUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command. The reservation covers the full
// estimated weight of all units. ErrInsufficientStock from the spool is
// returned as-is and the item is not added.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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
	spoolRepo := uow.SpoolRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	sp, err := spoolRepo.Get(ctx, cmd.SpoolID())
	if err != nil {
		return err
	}

	reservation, err := sp.Reserve(cmd.EstimatedGrams() * float64(cmd.Quantity()))
	if err != nil {
		return err
	}

	item, err := order.NewItem(kernel.NewUUID(), sp.ID(), reservation.ID(),
		cmd.Name(), cmd.EstimatedGrams(), cmd.Quantity(), cmd.RatePerGram(),
		cmd.PrintHours(), cmd.Settings())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
		return err
	}

	if err = spoolRepo.Update(ctx, sp); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
