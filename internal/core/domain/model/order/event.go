package order

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
)

// StatusChangedEvent records one lifecycle transition of an order. The
// aggregate collects events as transitions happen; handlers pull and persist
// them in the same unit of work as the order itself.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}

func newStatusChangedEvent(orderID kernel.UUID, from, to Status) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:    orderID,
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	}
}

// PullEvents returns the transitions recorded since the last pull and clears
// the aggregate's event list.
func (o *Order) PullEvents() []StatusChangedEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) recordTransition(from, to Status) {
	o.events = append(o.events, newStatusChangedEvent(o.id, from, to))
}
