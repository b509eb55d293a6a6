package order_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID("O-1")
	require.NoError(t, err)
	cargo, err := kernel.NewCargo(4000, 15)
	require.NoError(t, err)
	o, err := order.NewOrder(id, "Warehouse 7", cargo)
	require.NoError(t, err)
	return o
}

func testBinding(t *testing.T) (kernel.PlateNumber, kernel.DriverID) {
	t.Helper()
	plate, err := kernel.NewPlateNumber("V-100")
	require.NoError(t, err)
	driverID, err := kernel.NewDriverID("D-1")
	require.NoError(t, err)
	return plate, driverID
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts pending and unbound", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.VehiclePlate())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.StartTime())
		assert.Nil(t, o.EndTime())
		require.NoError(t, o.Validate())
	})

	t.Run("empty destination is rejected", func(t *testing.T) {
		id, _ := kernel.NewOrderID("O-1")
		cargo, _ := kernel.NewCargo(4000, 15)
		_, err := order.NewOrder(id, "", cargo)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("binds vehicle and driver and stamps start time", func(t *testing.T) {
		o := newTestOrder(t)
		plate, driverID := testBinding(t)
		now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

		require.NoError(t, o.Assign(plate, driverID, now))

		assert.Equal(t, order.Loading, o.Status())
		require.NotNil(t, o.VehiclePlate())
		assert.True(t, plate.IsEqual(*o.VehiclePlate()))
		require.NotNil(t, o.DriverID())
		assert.True(t, driverID.IsEqual(*o.DriverID()))
		require.NotNil(t, o.StartTime())
		assert.Equal(t, now, *o.StartTime())
	})

	t.Run("cannot assign twice", func(t *testing.T) {
		o := newTestOrder(t)
		plate, driverID := testBinding(t)

		require.NoError(t, o.Assign(plate, driverID, time.Now()))
		require.Error(t, o.Assign(plate, driverID, time.Now()))
	})

	t.Run("rejects zero-value binding", func(t *testing.T) {
		o := newTestOrder(t)
		var plate kernel.PlateNumber
		_, driverID := testBinding(t)

		require.Error(t, o.Assign(plate, driverID, time.Now()))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	o := newTestOrder(t)
	plate, driverID := testBinding(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Hour)

	require.NoError(t, o.Assign(plate, driverID, start))
	require.NoError(t, o.StartTransit())
	require.NoError(t, o.Complete(end))

	assert.Equal(t, order.Completed, o.Status())
	require.NotNil(t, o.EndTime())
	assert.Equal(t, end, *o.EndTime())

	// Terminal: nothing moves it further.
	require.Error(t, o.StartTransit())
	require.Error(t, o.Cancel(end))
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending cancel leaves no end time", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel(time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.EndTime())
	})

	t.Run("active cancel stamps end time", func(t *testing.T) {
		o := newTestOrder(t)
		plate, driverID := testBinding(t)
		end := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

		require.NoError(t, o.Assign(plate, driverID, end.Add(-time.Hour)))
		require.NoError(t, o.Cancel(end))

		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.EndTime())
		assert.Equal(t, end, *o.EndTime())
	})
}

func TestRestoreOrder(t *testing.T) {
	id, _ := kernel.NewOrderID("O-1")
	cargo, _ := kernel.NewCargo(4000, 15)
	plate, driverID := testBinding(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("restores an active order", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "Warehouse 7", cargo, order.InTransit, &plate, &driverID, &start, nil)
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		require.NotNil(t, o.StartTime())
	})

	t.Run("rejects pending order with binding", func(t *testing.T) {
		_, err := order.RestoreOrder(id, "Warehouse 7", cargo, order.Pending, &plate, &driverID, nil, nil)
		require.Error(t, err)
	})

	t.Run("rejects active order without binding", func(t *testing.T) {
		_, err := order.RestoreOrder(id, "Warehouse 7", cargo, order.Loading, nil, nil, &start, nil)
		require.Error(t, err)
	})

	t.Run("rejects half binding", func(t *testing.T) {
		_, err := order.RestoreOrder(id, "Warehouse 7", cargo, order.Loading, &plate, nil, &start, nil)
		require.Error(t, err)
	})
}
