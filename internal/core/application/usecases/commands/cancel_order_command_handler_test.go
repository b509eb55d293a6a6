package commands_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(mustOrderID("O-1"))
	require.NoError(t, err)
	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	testOrder := buildTestOrder("O-1", 4000, 15)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, cmd.OrderID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, fixedClock(now))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	// A pending order never started, so no end time is stamped.
	assert.Nil(t, testOrder.EndTime())
	vehicleRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ActiveOrderReleasesVehicle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(mustOrderID("O-1"))
	require.NoError(t, err)
	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	testOrder, testVehicle := loadingFixture(t)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, cmd.OrderID()).Return(testOrder, nil).Once(),
		vehicleRepo.On("GetForUpdate", ctx, testVehicle.Plate()).Return(testVehicle, nil).Once(),
		vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, fixedClock(now))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	assert.Equal(t, vehicle.Idle, testVehicle.Status())
	require.NotNil(t, testOrder.EndTime())
	assert.Equal(t, now, *testOrder.EndTime())
}

func TestCancelOrderCommandHandler_Handle_CompletedOrderRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(mustOrderID("O-1"))
	require.NoError(t, err)

	testOrder, _ := inTransitFixture(t)
	require.NoError(t, testOrder.Complete(time.Now()))

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, cmd.OrderID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, fixedClock(time.Now()))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
}
