package commands

import (
	"context"

	"printshop/internal/core/domain/services"
)

// CancelOrderCommandHandler handles abandoning an order. Reservation returns
// and the status change are persisted in one transaction.
type CancelOrderCommandHandler struct {
	uowFactory   OrderSpoolUoWFactory
	cancellation services.OrderCancellation
}

// NewCancelOrderCommandHandler creates a handler for cancelling orders.
func NewCancelOrderCommandHandler(uowFactory OrderSpoolUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		cancellation: services.NewOrderCancellation(),
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	spools, err := spoolRepo.GetMany(ctx, distinctSpoolIDs(aggregate))
	if err != nil {
		return err
	}

	if err = h.cancellation.Cancel(aggregate, spools); err != nil {
		return err
	}

	for _, sp := range spools {
		if err = spoolRepo.Update(ctx, sp); err != nil {
			return err
		}
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
