package commands

import (
	"context"

	"printshop/internal/core/domain/model/spool"
)

// AddSpoolCommandHandler handles registering spools entering inventory.
type AddSpoolCommandHandler struct {
	uowFactory SpoolUoWFactory
}

// NewAddSpoolCommandHandler creates a handler for spool registration.
func NewAddSpoolCommandHandler(uowFactory SpoolUoWFactory) AddSpoolCommandHandler {
	return AddSpoolCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-spool command.
func (h *AddSpoolCommandHandler) Handle(ctx context.Context, cmd AddSpoolCommand) error {
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

	aggregate, err := spool.NewSpool(cmd.SpoolID(), cmd.Name(), cmd.Color(),
		cmd.Brand(), cmd.FilamentType(), cmd.Category(), cmd.TotalWeight())
	if err != nil {
		return err
	}

	if err = uow.SpoolRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
