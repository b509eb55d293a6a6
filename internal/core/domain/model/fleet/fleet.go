// Package fleet contains the Fleet aggregate: the organizational grouping that
// owns vehicles and drivers by reference.
package fleet

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// ErrFleetIsNotConstructed is returned when a Fleet instance was not created
// through NewFleet or RestoreFleet.
var ErrFleetIsNotConstructed = errors.New("Fleet must be created via NewFleet constructor")

// Fleet is the aggregate root for an organizational fleet. Vehicles and drivers
// reference their fleet by id; the fleet does not contain them.
type Fleet struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewFleet creates a fleet with the given identity and name.
func NewFleet(id kernel.UUID, name string) (*Fleet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Fleet{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreFleet reconstructs a fleet from persistence.
func RestoreFleet(id kernel.UUID, name string) (*Fleet, error) {
	return NewFleet(id, name)
}

// Validate ensures the Fleet was created through a constructor.
func (f *Fleet) Validate() error {
	if f == nil {
		return ErrFleetIsNotConstructed
	}
	return f.guard.Validate(ErrFleetIsNotConstructed)
}

// IsEqual compares two fleets by id.
func (f *Fleet) IsEqual(other *Fleet) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the fleet's identifier.
func (f *Fleet) ID() kernel.UUID {
	return f.id
}

// Name returns the fleet's display name.
func (f *Fleet) Name() string {
	return f.name
}
