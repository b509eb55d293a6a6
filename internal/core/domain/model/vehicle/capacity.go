package vehicle

import (
	"fmt"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

// ErrCapacityIsNotConstructed is returned when validating a zero-value Capacity.
var ErrCapacityIsNotConstructed = errs.NewValueIsRequiredError("Capacity must be created via NewCapacity")

// Capacity is a vehicle's load ceiling: maximum weight in kilograms and maximum
// volume in cubic meters. It is an immutable value object; Fits is the single
// capacity check the assignment flow relies on and is never bypassed.
type Capacity struct {
	maxWeight int
	maxVolume int
}

// NewCapacity creates a Capacity with the given ceilings.
// Both values must be greater than zero.
func NewCapacity(maxWeight, maxVolume int) (Capacity, error) {
	if maxWeight <= 0 {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause("maxWeight",
			fmt.Errorf("%d is not greater than 0", maxWeight))
	}
	if maxVolume <= 0 {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause("maxVolume",
			fmt.Errorf("%d is not greater than 0", maxVolume))
	}
	return Capacity{maxWeight: maxWeight, maxVolume: maxVolume}, nil
}

// Fits reports whether the cargo fits this capacity: cargo weight and volume must
// both be within the ceilings. Pure predicate, no side effects; capacity is checked
// against the single order being assigned, not a cumulative load, because a vehicle
// holds at most one active binding at a time.
func (c Capacity) Fits(cargo kernel.Cargo) bool {
	return cargo.Weight() <= c.maxWeight && cargo.Volume() <= c.maxVolume
}

// MaxWeight returns the weight ceiling in kilograms.
func (c Capacity) MaxWeight() int {
	return c.maxWeight
}

// MaxVolume returns the volume ceiling in cubic meters.
func (c Capacity) MaxVolume() int {
	return c.maxVolume
}

// IsEqual reports whether two capacities have the same ceilings.
func (c Capacity) IsEqual(other Capacity) bool {
	return c.maxWeight == other.maxWeight && c.maxVolume == other.maxVolume
}

// Validate returns ErrCapacityIsNotConstructed for the zero value.
func (c Capacity) Validate() error {
	if c.maxWeight <= 0 || c.maxVolume <= 0 {
		return ErrCapacityIsNotConstructed
	}
	return nil
}
