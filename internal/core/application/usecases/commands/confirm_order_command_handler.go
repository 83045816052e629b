package commands

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
)

// ConfirmOrderCommandHandler handles order confirmation. The two-phase
// commit of the domain service runs inside one transaction, so a
// CommitFailure leaves both the order and every spool untouched.
type ConfirmOrderCommandHandler struct {
	uowFactory   OrderSpoolUoWFactory
	confirmation services.OrderConfirmation
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderSpoolUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory:   uowFactory,
		confirmation: services.NewOrderConfirmation(),
	}
}

// Handle processes the confirmation command.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if err = h.confirmation.Confirm(aggregate, spools); err != nil {
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

// distinctSpoolIDs collects the spool of every item exactly once.
func distinctSpoolIDs(aggregate *order.Order) []kernel.UUID {
	seen := make(map[string]struct{})
	var ids []kernel.UUID
	for _, item := range aggregate.Items() {
		key := item.SpoolID().String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, item.SpoolID())
	}
	return ids
}
