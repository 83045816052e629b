package services_test

import (
	"testing"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/spool"
	"printshop/internal/core/domain/pricing"
	"printshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpool(t *testing.T, grams float64) *spool.Spool {
	t.Helper()
	s, err := spool.NewSpool(kernel.NewUUID(), "", "Black", "eSUN", "PLA+",
		spool.CategoryStandard, grams)
	require.NoError(t, err)
	return s
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-2026-001", kernel.NewUUID(),
		pricing.PaymentCash, false)
	require.NoError(t, err)
	return o
}

// reserveItem reserves grams on the spool and adds the matching item to the
// order, mirroring what the AddOrderItem handler does.
func reserveItem(t *testing.T, o *order.Order, sp *spool.Spool, grams float64) *order.Item {
	t.Helper()
	r, err := sp.Reserve(grams)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), sp.ID(), r.ID(),
		"part", grams, 1, 2.75, 5, order.PrintSettings{})
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	return item
}

func TestOrderConfirmation_Confirm(t *testing.T) {
	confirmation := services.NewOrderConfirmation()

	t.Run("commits every reservation and confirms the order", func(t *testing.T) {
		o := newDraftOrder(t)
		sp1 := newSpool(t, 500)
		sp2 := newSpool(t, 300)
		reserveItem(t, o, sp1, 182)
		reserveItem(t, o, sp2, 100)

		err := confirmation.Confirm(o, []*spool.Spool{sp1, sp2})

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, 318.0, sp1.RemainingWeight())
		assert.Equal(t, 200.0, sp2.RemainingWeight())
		assert.Equal(t, 0.0, sp1.ReservedWeight())
		assert.Equal(t, 0.0, sp2.ReservedWeight())
	})

	t.Run("one bad reservation rejects the whole confirmation", func(t *testing.T) {
		o := newDraftOrder(t)
		sp1 := newSpool(t, 500)
		sp2 := newSpool(t, 300)
		reserveItem(t, o, sp1, 182)
		item2 := reserveItem(t, o, sp2, 100)
		// The second item's hold is already gone when confirmation runs.
		require.NoError(t, sp2.ReturnReservation(item2.ReservationID()))

		err := confirmation.Confirm(o, []*spool.Spool{sp1, sp2})

		require.ErrorIs(t, err, services.ErrCommitFailure)
		assert.Equal(t, order.StatusDraft, o.Status())
		// Nothing was committed anywhere.
		assert.Equal(t, 500.0, sp1.RemainingWeight())
		assert.Equal(t, 182.0, sp1.ReservedWeight())
		assert.Equal(t, 300.0, sp2.RemainingWeight())
	})

	t.Run("missing spool rejects the confirmation", func(t *testing.T) {
		o := newDraftOrder(t)
		sp := newSpool(t, 500)
		reserveItem(t, o, sp, 182)

		err := confirmation.Confirm(o, nil)

		require.ErrorIs(t, err, services.ErrCommitFailure)
		assert.Equal(t, order.StatusDraft, o.Status())
	})

	t.Run("empty order cannot be confirmed", func(t *testing.T) {
		o := newDraftOrder(t)

		err := confirmation.Confirm(o, nil)

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("confirmed order cannot be confirmed again", func(t *testing.T) {
		o := newDraftOrder(t)
		sp := newSpool(t, 500)
		reserveItem(t, o, sp, 100)
		require.NoError(t, confirmation.Confirm(o, []*spool.Spool{sp}))

		err := confirmation.Confirm(o, []*spool.Spool{sp})

		require.ErrorIs(t, err, services.ErrCommitFailure)
	})
}

func TestOrderCancellation_Cancel(t *testing.T) {
	cancellation := services.NewOrderCancellation()

	t.Run("returns held reservations in full for a draft order", func(t *testing.T) {
		o := newDraftOrder(t)
		sp := newSpool(t, 500)
		reserveItem(t, o, sp, 182)

		err := cancellation.Cancel(o, []*spool.Spool{sp})

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, 500.0, sp.RemainingWeight())
		assert.Equal(t, 0.0, sp.ReservedWeight())
		assert.Equal(t, 500.0, sp.AvailableWeight())
	})

	t.Run("committed grams stay consumed after cancellation", func(t *testing.T) {
		o := newDraftOrder(t)
		sp := newSpool(t, 500)
		reserveItem(t, o, sp, 182)
		require.NoError(t, services.NewOrderConfirmation().Confirm(o, []*spool.Spool{sp}))

		err := cancellation.Cancel(o, []*spool.Spool{sp})

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, 318.0, sp.RemainingWeight())
	})

	t.Run("completed order cannot be cancelled", func(t *testing.T) {
		o := newDraftOrder(t)
		sp := newSpool(t, 500)
		reserveItem(t, o, sp, 100)
		require.NoError(t, o.Complete())

		err := cancellation.Cancel(o, []*spool.Spool{sp})

		require.Error(t, err)
		assert.Equal(t, 100.0, sp.ReservedWeight())
	})

	t.Run("missing spool fails before any mutation", func(t *testing.T) {
		o := newDraftOrder(t)
		sp := newSpool(t, 500)
		reserveItem(t, o, sp, 100)

		err := cancellation.Cancel(o, nil)

		require.Error(t, err)
		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Equal(t, 100.0, sp.ReservedWeight())
	})
}
