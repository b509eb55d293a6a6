package kernel

import (
	"fmt"

	"fleetdispatch/internal/pkg/errs"
)

// ErrCargoIsNotConstructed is returned when validating a zero-value Cargo.
var ErrCargoIsNotConstructed = errs.NewValueIsRequiredError("Cargo must be created via NewCargo")

// Cargo is the weight/volume pair of an order's load. Weight is in kilograms,
// volume in cubic meters. Both must be positive; an order without a load is not
// an order. Cargo is immutable and compared against a vehicle's Capacity at
// assignment time.
type Cargo struct {
	weight int
	volume int
}

// NewCargo creates a Cargo with the given weight and volume.
// Both values must be greater than zero.
func NewCargo(weight, volume int) (Cargo, error) {
	if weight <= 0 {
		return Cargo{}, errs.NewValueIsInvalidErrorWithCause("cargoWeight",
			fmt.Errorf("%d is not greater than 0", weight))
	}
	if volume <= 0 {
		return Cargo{}, errs.NewValueIsInvalidErrorWithCause("cargoVolume",
			fmt.Errorf("%d is not greater than 0", volume))
	}
	return Cargo{weight: weight, volume: volume}, nil
}

// Weight returns the cargo weight in kilograms.
func (c Cargo) Weight() int {
	return c.weight
}

// Volume returns the cargo volume in cubic meters.
func (c Cargo) Volume() int {
	return c.volume
}

// IsEqual reports whether two cargo loads have the same weight and volume.
func (c Cargo) IsEqual(other Cargo) bool {
	return c.weight == other.weight && c.volume == other.volume
}

// Validate returns ErrCargoIsNotConstructed for the zero value.
func (c Cargo) Validate() error {
	if c.weight <= 0 || c.volume <= 0 {
		return ErrCargoIsNotConstructed
	}
	return nil
}
