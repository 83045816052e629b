package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/spool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_ReturnsHeldReservations(t *testing.T) {
	ctx := t.Context()

	testOrder := newDraftOrder(t)
	testSpool := newActiveSpool(t, 500)
	addReservedItem(t, testOrder, testSpool, 182)
	cmd, err := commands.NewDeleteOrderCommand(testOrder.ID())
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
		orderRepo.On("Delete", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderSpoolUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 500.0, testSpool.AvailableWeight())
	assert.Equal(t, 500.0, testSpool.RemainingWeight())
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_CommittedGramsStayConsumed(t *testing.T) {
	ctx := t.Context()

	testOrder := newDraftOrder(t)
	testSpool := newActiveSpool(t, 500)
	addReservedItem(t, testOrder, testSpool, 182)
	require.NoError(t, testSpool.CommitReservation(testOrder.Items()[0].ReservationID()))
	cmd, err := commands.NewDeleteOrderCommand(testOrder.ID())
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
		orderRepo.On("Delete", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderSpoolUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 318.0, testSpool.RemainingWeight())
	uow.AssertExpectations(t)
}
