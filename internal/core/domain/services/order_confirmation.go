package services

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/spool"
)

// ErrCommitFailure is returned when the confirmation pre-validation finds at
// least one item whose reservation cannot be committed. The order stays in
// Draft and no spool is touched.
var ErrCommitFailure = errors.New("order confirmation commit failure")

// OrderConfirmation is the domain service that moves a draft order to
// Confirmed by committing every item's filament reservation on its spool.
//
// The commit is two-phase: every reservation is pre-validated with
// Spool.CanCommit before any is committed, so a failure rejects the whole
// confirmation up front and never leaves partial commits behind.
type OrderConfirmation struct{}

// NewOrderConfirmation creates a new OrderConfirmation instance.
func NewOrderConfirmation() OrderConfirmation {
	return OrderConfirmation{}
}

// Confirm commits the reservations of every item on the order and moves the
// order to Confirmed. The spools slice must contain the spool of every item;
// the caller loads them in the same unit of work and persists both the order
// and the mutated spools afterwards.
//
// Returns ErrCommitFailure, with the first offending item's cause attached,
// when any reservation fails pre-validation. The order and all spools are
// unchanged in that case.
func (s OrderConfirmation) Confirm(o *order.Order, spools []*spool.Spool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(o.Items()) == 0 {
		return order.ErrOrderHasNoItems
	}

	byID := make(map[string]*spool.Spool, len(spools))
	for _, sp := range spools {
		if err := sp.Validate(); err != nil {
			return err
		}
		byID[sp.ID().String()] = sp
	}

	// Phase one: validate every item without mutating anything.
	for _, item := range o.Items() {
		sp, ok := byID[item.SpoolID().String()]
		if !ok {
			return fmt.Errorf("%w: spool %s is not loaded", ErrCommitFailure, item.SpoolID().String())
		}
		if err := sp.CanCommit(item.ReservationID()); err != nil {
			return fmt.Errorf("%w: item %s: %w", ErrCommitFailure, item.ID().String(), err)
		}
	}

	// Phase two: commit all. Every commit was pre-validated above.
	for _, item := range o.Items() {
		sp := byID[item.SpoolID().String()]
		if err := sp.CommitReservation(item.ReservationID()); err != nil {
			return fmt.Errorf("%w: item %s: %w", ErrCommitFailure, item.ID().String(), err)
		}
	}

	return o.Confirm()
}
