package commands

import (
	"context"
	"fmt"

	"printshop/internal/core/domain/model/spool"
)

// DeleteOrderCommandHandler handles removing an order entirely. Every held
// reservation of its items is returned to its spool in the same transaction;
// committed grams stay consumed, like cancellation.
type DeleteOrderCommandHandler struct {
	uowFactory OrderSpoolUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for deleting orders.
func NewDeleteOrderCommandHandler(uowFactory OrderSpoolUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	bySpool := make(map[string]*spool.Spool, len(spools))
	for _, sp := range spools {
		bySpool[sp.ID().String()] = sp
	}

	for _, item := range aggregate.Items() {
		sp, ok := bySpool[item.SpoolID().String()]
		if !ok {
			return fmt.Errorf("spool %s is not loaded", item.SpoolID().String())
		}
		for _, r := range sp.Reservations() {
			if r.ID().IsEqual(item.ReservationID()) && r.IsHeld() {
				if err = sp.ReturnReservation(r.ID()); err != nil {
					return err
				}
			}
		}
	}

	for _, sp := range spools {
		if err = spoolRepo.Update(ctx, sp); err != nil {
			return err
		}
	}
	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
