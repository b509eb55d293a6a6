package order

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a cargo order. It manages the order lifecycle
// from creation through assignment and transit to completion or cancellation.
//
// Invariants:
//   - Identified by a valid order id; destination is non-empty; cargo is positive
//   - Pending orders carry no binding; active and completed orders carry one
//   - startTime is stamped by assignment, endTime by completion or cancellation
//   - Status transitions follow the rules in Status
type Order struct {
	id          kernel.OrderID
	destination string
	cargo       kernel.Cargo
	status      Status

	vehiclePlate *kernel.PlateNumber
	driverID     *kernel.DriverID

	startTime *time.Time
	endTime   *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Pending status with no binding.
func NewOrder(id kernel.OrderID, destination string, cargo kernel.Cargo) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setDestination(destination),
		order.setCargo(cargo),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, verifying that the stored
// status, binding, and timestamps are mutually consistent.
func RestoreOrder(
	id kernel.OrderID,
	destination string,
	cargo kernel.Cargo,
	status Status,
	vehiclePlate *kernel.PlateNumber,
	driverID *kernel.DriverID,
	startTime *time.Time,
	endTime *time.Time,
) (*Order, error) {
	order, err := NewOrder(id, destination, cargo)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	bound := vehiclePlate != nil && driverID != nil
	if (vehiclePlate == nil) != (driverID == nil) {
		return nil, errs.NewValueIsInvalidError("binding must reference both a vehicle and a driver")
	}
	if err = status.ValidateCanHaveBinding(bound); err != nil {
		return nil, err
	}

	order.status = status
	order.vehiclePlate = vehiclePlate
	order.driverID = driverID
	order.startTime = startTime
	order.endTime = endTime

	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by order id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Destination returns the delivery destination.
func (o *Order) Destination() string {
	return o.destination
}

// Cargo returns the order's load.
func (o *Order) Cargo() kernel.Cargo {
	return o.cargo
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// VehiclePlate returns the bound vehicle's plate, or nil if unbound.
func (o *Order) VehiclePlate() *kernel.PlateNumber {
	return o.vehiclePlate
}

// DriverID returns the bound driver's id, or nil if unbound.
func (o *Order) DriverID() *kernel.DriverID {
	return o.driverID
}

// StartTime returns when the order was assigned, or nil.
func (o *Order) StartTime() *time.Time {
	return o.startTime
}

// EndTime returns when the order reached a terminal state, or nil.
func (o *Order) EndTime() *time.Time {
	return o.endTime
}

// ValidateAssign checks assignability without transitioning.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign binds the order to a vehicle and driver, moves it to Loading, and
// stamps the start time. Valid only from Pending; the transition is irreversible
// through this method.
func (o *Order) Assign(vehiclePlate kernel.PlateNumber, driverID kernel.DriverID, at time.Time) error {
	if err := vehiclePlate.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehiclePlate = &vehiclePlate
	o.driverID = &driverID
	o.startTime = &at
	return nil
}

// StartTransit moves a Loading order to InTransit.
func (o *Order) StartTransit() error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete marks an InTransit order as delivered and stamps the end time.
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.endTime = &at
	return nil
}

// Cancel withdraws a non-terminal order. The end time is stamped only when the
// order had already been assigned; a Pending order simply terminates.
func (o *Order) Cancel(at time.Time) error {
	wasActive := o.status.IsActive()

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	if wasActive {
		o.endTime = &at
	}
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func (o *Order) setCargo(cargo kernel.Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}
	o.cargo = cargo
	return nil
}
