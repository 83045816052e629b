package commands

import (
	"context"

	"printshop/internal/core/domain/model/printer"
)

// CompleteOrderCommandHandler handles finishing an order: measured weights
// are recorded on the items, usage lands on the producing printers, and the
// order moves to Completed, all in one transaction.
type CompleteOrderCommandHandler struct {
	uowFactory OrderPrinterUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completing orders.
func NewCompleteOrderCommandHandler(uowFactory OrderPrinterUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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
	printerRepo := uow.PrinterRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// One printer may produce several items; load each once and record
	// usage cumulatively.
	printers := make(map[string]*printer.Printer)
	for _, result := range cmd.Results() {
		item, err := aggregate.FindItem(result.ItemID)
		if err != nil {
			return err
		}
		if err = item.RecordActualWeight(result.ActualGrams); err != nil {
			return err
		}
		if result.PrintHours > 0 {
			if err = item.RecordActualHours(result.PrintHours); err != nil {
				return err
			}
		}

		if result.PrinterID.Validate() != nil {
			continue
		}
		if err = item.AssignPrinter(result.PrinterID); err != nil {
			return err
		}

		p, ok := printers[result.PrinterID.String()]
		if !ok {
			if p, err = printerRepo.Get(ctx, result.PrinterID); err != nil {
				return err
			}
			printers[result.PrinterID.String()] = p
		}
		grams := result.ActualGrams * float64(item.Quantity())
		if err = p.RecordPrint(grams, result.PrintHours); err != nil {
			return err
		}
	}

	if cmd.AmountReceived() > 0 {
		if err = aggregate.RecordPayment(cmd.AmountReceived()); err != nil {
			return err
		}
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	for _, p := range printers {
		if err = printerRepo.Update(ctx, p); err != nil {
			return err
		}
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
