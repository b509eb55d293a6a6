package vehicle

import (
	"errors"
	"fmt"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not created
// through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is the aggregate root for a fleet vehicle. It owns the vehicle's
// operational status and capacity ceiling.
//
// Invariants:
//   - Identified by a valid plate number and owned by exactly one fleet
//   - Capacity ceilings are positive and immutable after registration
//   - Status transitions follow the rules in Status
//   - Status is Exception exactly while unresolved exception records reference it
//
// Only the assignment flow and the exception processor mutate a vehicle.
type Vehicle struct {
	plate    kernel.PlateNumber
	fleetID  kernel.UUID
	capacity Capacity
	status   Status

	guard guard.ConstructorGuard
}

// NewVehicle registers a new vehicle in Idle status.
func NewVehicle(plate kernel.PlateNumber, fleetID kernel.UUID, capacity Capacity) (*Vehicle, error) {
	vehicle := &Vehicle{
		status: Idle,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setPlate(plate),
		vehicle.setFleetID(fleetID),
		vehicle.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreVehicle reconstructs a vehicle from persistence with an explicit status.
func RestoreVehicle(plate kernel.PlateNumber, fleetID kernel.UUID, capacity Capacity, status Status) (*Vehicle, error) {
	vehicle, err := NewVehicle(plate, fleetID, capacity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	vehicle.status = status

	return vehicle, nil
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by plate number.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.plate.IsEqual(other.plate)
}

// Plate returns the vehicle's plate number.
func (v *Vehicle) Plate() kernel.PlateNumber {
	return v.plate
}

// FleetID returns the owning fleet's identifier.
func (v *Vehicle) FleetID() kernel.UUID {
	return v.fleetID
}

// Capacity returns the vehicle's load ceiling.
func (v *Vehicle) Capacity() Capacity {
	return v.capacity
}

// Status returns the vehicle's current operational status.
func (v *Vehicle) Status() Status {
	return v.status
}

// StartLoading moves an Idle vehicle into Loading when an order is bound to it.
func (v *Vehicle) StartLoading() error {
	newStatus, err := v.status.StartLoading()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// StartTransit moves a Loading vehicle into InTransit.
func (v *Vehicle) StartTransit() error {
	newStatus, err := v.status.StartTransit()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// Release returns a Loading or InTransit vehicle to Idle when its order
// completes or is cancelled.
func (v *Vehicle) Release() error {
	newStatus, err := v.status.Release()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// MarkException flags the vehicle as Exception. The transition is unconditional
// and idempotent: flagging an already flagged vehicle keeps it flagged. Any
// active order binding is left untouched.
func (v *Vehicle) MarkException() {
	v.status = Exception
}

// RestoreTo clears the Exception flag, returning the vehicle to the given status.
// The target is derived by the caller from the vehicle's active order (Loading or
// InTransit) or defaults to Idle. Valid only while the vehicle is flagged.
func (v *Vehicle) RestoreTo(target Status) error {
	if v.status != Exception {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to restore from", v.status.String()),
		)
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if target == Exception {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot restore a vehicle to %s", target.String()),
		)
	}

	v.status = target
	return nil
}

func (v *Vehicle) setPlate(plate kernel.PlateNumber) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setFleetID(fleetID kernel.UUID) error {
	if err := fleetID.Validate(); err != nil {
		return err
	}
	v.fleetID = fleetID
	return nil
}

func (v *Vehicle) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	v.capacity = capacity
	return nil
}
