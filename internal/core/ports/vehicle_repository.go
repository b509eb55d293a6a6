// Package ports defines the contracts between the core and its infrastructure:
// per-aggregate repositories, the unit-of-work transaction boundary, and the
// clock the core stamps order times with. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a newly registered vehicle.
	// Fails when a vehicle with the same plate already exists.
	Add(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Get retrieves a vehicle by plate number.
	Get(ctx context.Context, plate kernel.PlateNumber) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle by plate number, locking its row for the
	// remainder of the transaction. Mutating flows use it so a status check and
	// the following write cannot interleave with a concurrent caller.
	GetForUpdate(ctx context.Context, plate kernel.PlateNumber) (*vehicle.Vehicle, error)

	// GetAllIdle retrieves every vehicle currently in Idle status, across fleets.
	// Used by automatic dispatch to collect assignment candidates.
	GetAllIdle(ctx context.Context) ([]*vehicle.Vehicle, error)
}
