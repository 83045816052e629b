package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/spool"
	"printshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addReservedItem reserves grams on the spool and puts the matching item on
// the order, the way AddOrderItem leaves the world.
func addReservedItem(t *testing.T, o *order.Order, sp *spool.Spool, grams float64) *order.Item {
	t.Helper()
	r, err := sp.Reserve(grams)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), sp.ID(), r.ID(),
		"part", grams, 1, 2.75, 5, order.PrintSettings{})
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	return item
}

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newDraftOrder(t)
	testSpool := newActiveSpool(t, 500)
	addReservedItem(t, testOrder, testSpool, 182)
	cmd, err := commands.NewConfirmOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	spoolRepo := new(MockSpoolRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("SpoolRepository").Return(spoolRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		spoolRepo.On("GetMany", ctx, []kernel.UUID{testSpool.ID()}).
			Return([]*spool.Spool{testSpool}, nil).Once(),
		spoolRepo.On("Update", ctx, mock.AnythingOfType("*spool.Spool")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderSpoolUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, testOrder.Status())
	assert.Equal(t, 318.0, testSpool.RemainingWeight())
	assert.Equal(t, 0.0, testSpool.ReservedWeight())
	orderRepo.AssertExpectations(t)
	spoolRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_CommitFailure(t *testing.T) {
	ctx := t.Context()

	testOrder := newDraftOrder(t)
	testSpool := newActiveSpool(t, 500)
	item := addReservedItem(t, testOrder, testSpool, 182)
	// The hold is already gone; pre-validation must reject the confirm.
	require.NoError(t, testSpool.ReturnReservation(item.ReservationID()))
	cmd, err := commands.NewConfirmOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	spoolRepo := new(MockSpoolRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("SpoolRepository").Return(spoolRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		spoolRepo.On("GetMany", ctx, []kernel.UUID{testSpool.ID()}).
			Return([]*spool.Spool{testSpool}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderSpoolUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrCommitFailure)
	assert.Equal(t, order.StatusDraft, testOrder.Status())
	assert.Equal(t, 500.0, testSpool.RemainingWeight())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ConfirmOrderCommand{} // not constructed properly

	factory := new(MockOrderSpoolUoWFactory)
	handler := commands.NewConfirmOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrConfirmOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
