package services

import (
	"fmt"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/spool"
)

// OrderCancellation is the domain service that abandons an order and releases
// whatever filament is still only held.
//
// Held reservations are returned to their spools in full. Reservations that
// were committed at confirmation stay consumed: the filament left the spool
// physically and cancelling the paperwork does not put it back.
type OrderCancellation struct{}

// NewOrderCancellation creates a new OrderCancellation instance.
func NewOrderCancellation() OrderCancellation {
	return OrderCancellation{}
}

// Cancel moves the order to Cancelled and returns every still-held
// reservation of its items. The spools slice must contain the spool of every
// item; missing spools fail the cancellation before anything is mutated.
func (s OrderCancellation) Cancel(o *order.Order, spools []*spool.Spool) error {
	if err := o.Validate(); err != nil {
		return err
	}

	byID := make(map[string]*spool.Spool, len(spools))
	for _, sp := range spools {
		if err := sp.Validate(); err != nil {
			return err
		}
		byID[sp.ID().String()] = sp
	}

	for _, item := range o.Items() {
		if _, ok := byID[item.SpoolID().String()]; !ok {
			return fmt.Errorf("spool %s is not loaded", item.SpoolID().String())
		}
	}

	if err := o.Cancel(); err != nil {
		return err
	}

	for _, item := range o.Items() {
		sp := byID[item.SpoolID().String()]
		for _, r := range sp.Reservations() {
			if r.ID().IsEqual(item.ReservationID()) && r.IsHeld() {
				if err := sp.ReturnReservation(r.ID()); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
