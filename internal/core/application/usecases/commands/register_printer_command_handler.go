package commands

import (
	"context"

	"printshop/internal/core/domain/model/printer"
)

// RegisterPrinterCommandHandler handles printer registration.
type RegisterPrinterCommandHandler struct {
	uowFactory PrinterUoWFactory
}

// NewRegisterPrinterCommandHandler creates a handler for printer registration.
func NewRegisterPrinterCommandHandler(uowFactory PrinterUoWFactory) RegisterPrinterCommandHandler {
	return RegisterPrinterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the register-printer command.
func (h *RegisterPrinterCommandHandler) Handle(ctx context.Context, cmd RegisterPrinterCommand) error {
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

	aggregate, err := printer.NewPrinter(cmd.PrinterID(), cmd.Name(), cmd.Model(),
		cmd.NozzleLifetimeHours())
	if err != nil {
		return err
	}

	if err = uow.PrinterRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
