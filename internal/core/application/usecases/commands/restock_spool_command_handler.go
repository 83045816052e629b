package commands

import (
	"context"
)

// RestockSpoolCommandHandler handles explicit filament additions.
type RestockSpoolCommandHandler struct {
	uowFactory SpoolUoWFactory
}

// NewRestockSpoolCommandHandler creates a handler for restocking spools.
func NewRestockSpoolCommandHandler(uowFactory SpoolUoWFactory) RestockSpoolCommandHandler {
	return RestockSpoolCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
func (h *RestockSpoolCommandHandler) Handle(ctx context.Context, cmd RestockSpoolCommand) error {
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

	spoolRepo := uow.SpoolRepository()
	aggregate, err := spoolRepo.Get(ctx, cmd.SpoolID())
	if err != nil {
		return err
	}

	if err = aggregate.Restock(cmd.Grams()); err != nil {
		return err
	}

	if err = spoolRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
