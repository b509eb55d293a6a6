package commands_test

import (
	"context"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/exception"
	"fleetdispatch/internal/core/domain/model/fleet"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockFleetRepository struct{ mock.Mock }

func (m *MockFleetRepository) Add(ctx context.Context, f *fleet.Fleet) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFleetRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Fleet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Fleet), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, plate kernel.PlateNumber) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, plate kernel.PlateNumber) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllIdle(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.DriverID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllFreeByFleet(ctx context.Context, fleetID kernel.UUID) ([]*driver.Driver, error) {
	args := m.Called(ctx, fleetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstPending(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByVehicle(ctx context.Context, plate kernel.PlateNumber) (*order.Order, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockExceptionRepository struct{ mock.Mock }

func (m *MockExceptionRepository) Add(ctx context.Context, r *exception.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockExceptionRepository) Update(ctx context.Context, r *exception.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exception.Record), args.Error(1)
}

func (m *MockExceptionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*exception.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exception.Record), args.Error(1)
}

func (m *MockExceptionRepository) CountUnresolvedByVehicle(ctx context.Context, plate kernel.PlateNumber) (int64, error) {
	args := m.Called(ctx, plate)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW implements the transaction boundary and every repository accessor,
// so it satisfies each of the narrow per-handler unit-of-work interfaces.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) FleetRepository() ports.FleetRepository {
	args := m.Called()
	return args.Get(0).(ports.FleetRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ExceptionRepository() ports.ExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExceptionRepository)
}

type MockCreateFleetUoWFactory struct{ mock.Mock }

func (m *MockCreateFleetUoWFactory) Create() commands.CreateFleetUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateFleetUoW)
}

type MockCreateVehicleUoWFactory struct{ mock.Mock }

func (m *MockCreateVehicleUoWFactory) Create() commands.CreateVehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateVehicleUoW)
}

type MockCreateDriverUoWFactory struct{ mock.Mock }

func (m *MockCreateDriverUoWFactory) Create() commands.CreateDriverUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateDriverUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockAssignOrderUoWFactory struct{ mock.Mock }

func (m *MockAssignOrderUoWFactory) Create() commands.AssignOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignOrderUoW)
}

type MockTransitUoWFactory struct{ mock.Mock }

func (m *MockTransitUoWFactory) Create() commands.TransitUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitUoW)
}

type MockRecordExceptionUoWFactory struct{ mock.Mock }

func (m *MockRecordExceptionUoWFactory) Create() commands.RecordExceptionUoW {
	args := m.Called()
	return args.Get(0).(commands.RecordExceptionUoW)
}

type MockResolveExceptionUoWFactory struct{ mock.Mock }

func (m *MockResolveExceptionUoWFactory) Create() commands.ResolveExceptionUoW {
	args := m.Called()
	return args.Get(0).(commands.ResolveExceptionUoW)
}

type MockDispatchPendingUoWFactory struct{ mock.Mock }

func (m *MockDispatchPendingUoWFactory) Create() commands.DispatchPendingUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchPendingUoW)
}

// fixedClock returns a Clock frozen at the given instant.
func fixedClock(at time.Time) ports.Clock {
	return ports.ClockFunc(func() time.Time { return at })
}

func mustPlate(value string) kernel.PlateNumber {
	plate, err := kernel.NewPlateNumber(value)
	if err != nil {
		panic(err)
	}
	return plate
}

func mustDriverID(value string) kernel.DriverID {
	id, err := kernel.NewDriverID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func mustOrderID(value string) kernel.OrderID {
	id, err := kernel.NewOrderID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func buildTestOrder(id string, weight, volume int) *order.Order {
	cargo, err := kernel.NewCargo(weight, volume)
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(mustOrderID(id), "Warehouse 7", cargo)
	if err != nil {
		panic(err)
	}
	return o
}

func buildTestVehicle(plate string, fleetID kernel.UUID, maxWeight, maxVolume int) *vehicle.Vehicle {
	capacity, err := vehicle.NewCapacity(maxWeight, maxVolume)
	if err != nil {
		panic(err)
	}
	v, err := vehicle.NewVehicle(mustPlate(plate), fleetID, capacity)
	if err != nil {
		panic(err)
	}
	return v
}

func buildTestDriver(id string, fleetID kernel.UUID) *driver.Driver {
	d, err := driver.NewDriver(mustDriverID(id), "Jordan Lee", 3, "", fleetID)
	if err != nil {
		panic(err)
	}
	return d
}
