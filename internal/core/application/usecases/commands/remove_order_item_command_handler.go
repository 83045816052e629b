package commands

import (
	"context"
)

// RemoveOrderItemCommandHandler handles removing a line item from a draft
// order. The item's reservation is returned to its spool in the same
// transaction, restoring availability in full.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderSpoolUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for removing order items.
func NewRemoveOrderItemCommandHandler(uowFactory OrderSpoolUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	item, err := aggregate.RemoveItem(cmd.ItemID())
	if err != nil {
		return err
	}

	sp, err := spoolRepo.Get(ctx, item.SpoolID())
	if err != nil {
		return err
	}
	if err = sp.ReturnReservation(item.ReservationID()); err != nil {
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
