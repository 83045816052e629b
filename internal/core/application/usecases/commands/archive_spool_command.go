package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrArchiveSpoolCommandIsNotConstructed = errors.New(
	"ArchiveSpoolCommand must be created via NewArchiveSpoolCommand constructor",
)

// ArchiveSpoolCommand represents a request to retire a depleted spool,
// writing its leftover to the filament history log.
type ArchiveSpoolCommand struct { //nolint:recvcheck //using for validation
	spoolID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveSpoolCommand creates a command to archive a spool.
func NewArchiveSpoolCommand(spoolID kernel.UUID) (ArchiveSpoolCommand, error) {
	cmd := ArchiveSpoolCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSpoolID(spoolID); err != nil {
		return ArchiveSpoolCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveSpoolCommand) Validate() error {
	return c.guard.Validate(ErrArchiveSpoolCommandIsNotConstructed)
}

// SpoolID returns the spool to archive.
func (c ArchiveSpoolCommand) SpoolID() kernel.UUID {
	return c.spoolID
}

func (c *ArchiveSpoolCommand) setSpoolID(spoolID kernel.UUID) error {
	if err := spoolID.Validate(); err != nil {
		return err
	}
	c.spoolID = spoolID
	return nil
}
