package services

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
)

// Typed assignment failures, one per precondition. Each precondition is checked
// in this order and the first failure wins; on any failure neither the order nor
// the vehicle is mutated.
var (
	// ErrOrderNotAssignable is returned when the order does not exist or is not Pending.
	ErrOrderNotAssignable = errors.New("order is not assignable")

	// ErrVehicleUnavailable is returned when the vehicle does not exist or is not Idle.
	ErrVehicleUnavailable = errors.New("vehicle is not available")

	// ErrDriverFleetMismatch is returned when the driver does not exist or belongs
	// to a different fleet than the vehicle.
	ErrDriverFleetMismatch = errors.New("driver does not belong to the vehicle's fleet")

	// ErrOverloadRejected is returned when the order's cargo exceeds the vehicle's capacity.
	ErrOverloadRejected = errors.New("cargo exceeds vehicle capacity")
)

// OrderAssignment is the domain service that binds a pending order to a
// vehicle and driver. It owns the full precondition chain as an explicit,
// testable rule.
//
// Preconditions, checked in order with short-circuit:
//  1. order is Pending (ErrOrderNotAssignable)
//  2. vehicle is Idle (ErrVehicleUnavailable)
//  3. driver belongs to the vehicle's fleet (ErrDriverFleetMismatch)
//  4. the cargo fits the vehicle's capacity (ErrOverloadRejected)
//
// On success both aggregates are mutated together: the order is bound, moved to
// Loading, and stamped with the assignment time; the vehicle moves to Loading.
// The caller persists both within one transaction.
type OrderAssignment struct{}

// NewOrderAssignment creates a new OrderAssignment service.
func NewOrderAssignment() OrderAssignment {
	return OrderAssignment{}
}

// Assign runs the precondition chain and applies the assignment.
func (OrderAssignment) Assign(o *order.Order, v *vehicle.Vehicle, d *driver.Driver, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	if o.Status() != order.Pending {
		return ErrOrderNotAssignable
	}
	if v.Status() != vehicle.Idle {
		return ErrVehicleUnavailable
	}
	if !d.BelongsTo(v.FleetID()) {
		return ErrDriverFleetMismatch
	}
	if !v.Capacity().Fits(o.Cargo()) {
		return ErrOverloadRejected
	}

	if err := o.Assign(v.Plate(), d.ID(), at); err != nil {
		return err
	}
	if err := v.StartLoading(); err != nil {
		return err
	}

	return nil
}
