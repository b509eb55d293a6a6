package services_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, id string, weight, volume int) *order.Order {
	t.Helper()
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	cargo, err := kernel.NewCargo(weight, volume)
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, "Warehouse 7", cargo)
	require.NoError(t, err)
	return o
}

func buildVehicle(t *testing.T, plate string, fleetID kernel.UUID, maxWeight, maxVolume int) *vehicle.Vehicle {
	t.Helper()
	plateNumber, err := kernel.NewPlateNumber(plate)
	require.NoError(t, err)
	capacity, err := vehicle.NewCapacity(maxWeight, maxVolume)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(plateNumber, fleetID, capacity)
	require.NoError(t, err)
	return v
}

func buildDriver(t *testing.T, id string, fleetID kernel.UUID) *driver.Driver {
	t.Helper()
	driverID, err := kernel.NewDriverID(id)
	require.NoError(t, err)
	d, err := driver.NewDriver(driverID, "Alice Zhang", 3, "", fleetID)
	require.NoError(t, err)
	return d
}

func TestOrderAssignment_Assign_Success(t *testing.T) {
	fleetID := kernel.NewUUID()
	o := buildOrder(t, "O-1", 4000, 15)
	v := buildVehicle(t, "V-100", fleetID, 5000, 20)
	d := buildDriver(t, "D-1", fleetID)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	err := services.NewOrderAssignment().Assign(o, v, d, now)

	require.NoError(t, err)
	assert.Equal(t, order.Loading, o.Status())
	assert.Equal(t, vehicle.Loading, v.Status())
	require.NotNil(t, o.VehiclePlate())
	assert.Equal(t, "V-100", o.VehiclePlate().String())
	require.NotNil(t, o.DriverID())
	assert.Equal(t, "D-1", o.DriverID().String())
	require.NotNil(t, o.StartTime())
	assert.Equal(t, now, *o.StartTime())
}

func TestOrderAssignment_Assign_OrderNotAssignable(t *testing.T) {
	fleetID := kernel.NewUUID()
	v := buildVehicle(t, "V-100", fleetID, 5000, 20)
	d := buildDriver(t, "D-1", fleetID)

	// Any non-Pending order fails, regardless of vehicle and driver validity.
	for _, advance := range []func(o *order.Order){
		func(o *order.Order) { require.NoError(t, o.Cancel(time.Now())) },
		func(o *order.Order) {
			plate, _ := kernel.NewPlateNumber("V-999")
			driverID, _ := kernel.NewDriverID("D-999")
			require.NoError(t, o.Assign(plate, driverID, time.Now()))
		},
	} {
		o := buildOrder(t, "O-1", 4000, 15)
		advance(o)

		err := services.NewOrderAssignment().Assign(o, v, d, time.Now())
		require.ErrorIs(t, err, services.ErrOrderNotAssignable)
		assert.Equal(t, vehicle.Idle, v.Status())
	}
}

func TestOrderAssignment_Assign_VehicleUnavailable(t *testing.T) {
	fleetID := kernel.NewUUID()
	d := buildDriver(t, "D-1", fleetID)

	for _, status := range []vehicle.Status{vehicle.Loading, vehicle.InTransit, vehicle.Exception} {
		o := buildOrder(t, "O-1", 4000, 15)
		plate, _ := kernel.NewPlateNumber("V-100")
		capacity, _ := vehicle.NewCapacity(5000, 20)
		v, err := vehicle.RestoreVehicle(plate, fleetID, capacity, status)
		require.NoError(t, err)

		err = services.NewOrderAssignment().Assign(o, v, d, time.Now())
		require.ErrorIs(t, err, services.ErrVehicleUnavailable, status.String())
		assert.Equal(t, order.Pending, o.Status())
	}
}

func TestOrderAssignment_Assign_DriverFleetMismatch(t *testing.T) {
	o := buildOrder(t, "O-1", 4000, 15)
	v := buildVehicle(t, "V-100", kernel.NewUUID(), 5000, 20)
	d := buildDriver(t, "D-1", kernel.NewUUID())

	err := services.NewOrderAssignment().Assign(o, v, d, time.Now())

	require.ErrorIs(t, err, services.ErrDriverFleetMismatch)
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, vehicle.Idle, v.Status())
}

func TestOrderAssignment_Assign_OverloadRejected(t *testing.T) {
	fleetID := kernel.NewUUID()
	d := buildDriver(t, "D-1", fleetID)

	t.Run("overweight cargo", func(t *testing.T) {
		o := buildOrder(t, "O-2", 6000, 15)
		v := buildVehicle(t, "V-100", fleetID, 5000, 20)

		err := services.NewOrderAssignment().Assign(o, v, d, time.Now())

		require.ErrorIs(t, err, services.ErrOverloadRejected)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, vehicle.Idle, v.Status())
		assert.Nil(t, o.VehiclePlate())
	})

	t.Run("oversize cargo", func(t *testing.T) {
		o := buildOrder(t, "O-3", 4000, 25)
		v := buildVehicle(t, "V-100", fleetID, 5000, 20)

		err := services.NewOrderAssignment().Assign(o, v, d, time.Now())
		require.ErrorIs(t, err, services.ErrOverloadRejected)
	})

	t.Run("exact fit is accepted", func(t *testing.T) {
		o := buildOrder(t, "O-4", 5000, 20)
		v := buildVehicle(t, "V-100", fleetID, 5000, 20)

		require.NoError(t, services.NewOrderAssignment().Assign(o, v, d, time.Now()))
	})
}

func TestOrderAssignment_Assign_PreconditionOrder(t *testing.T) {
	// A non-Pending order against a busy vehicle reports the order failure:
	// preconditions are checked in a fixed order and the first failure wins.
	fleetID := kernel.NewUUID()
	o := buildOrder(t, "O-1", 6000, 25)
	require.NoError(t, o.Cancel(time.Now()))

	plate, _ := kernel.NewPlateNumber("V-100")
	capacity, _ := vehicle.NewCapacity(5000, 20)
	v, err := vehicle.RestoreVehicle(plate, fleetID, capacity, vehicle.Exception)
	require.NoError(t, err)
	d := buildDriver(t, "D-1", kernel.NewUUID())

	err = services.NewOrderAssignment().Assign(o, v, d, time.Now())
	require.ErrorIs(t, err, services.ErrOrderNotAssignable)
}
