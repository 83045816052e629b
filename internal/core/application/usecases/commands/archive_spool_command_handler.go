package commands

import (
	"context"
)

// ArchiveSpoolCommandHandler handles retiring spools. The status change and
// the waste record land in the same transaction, so the history log never
// has a record without an archived spool or the other way around.
type ArchiveSpoolCommandHandler struct {
	uowFactory SpoolWasteUoWFactory
}

// NewArchiveSpoolCommandHandler creates a handler for archiving spools.
func NewArchiveSpoolCommandHandler(uowFactory SpoolWasteUoWFactory) ArchiveSpoolCommandHandler {
	return ArchiveSpoolCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the archive command.
func (h *ArchiveSpoolCommandHandler) Handle(ctx context.Context, cmd ArchiveSpoolCommand) error {
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

	record, err := aggregate.Archive()
	if err != nil {
		return err
	}

	if err = spoolRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.WasteRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
