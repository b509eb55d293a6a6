package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a newly registered driver.
	// Fails when a driver with the same id already exists.
	Add(ctx context.Context, driver *driver.Driver) error

	// Get retrieves a driver by id.
	Get(ctx context.Context, id kernel.DriverID) (*driver.Driver, error)

	// GetAllFreeByFleet retrieves the fleet's drivers that are not bound to any
	// active order. A driver bound to a Loading or InTransit order is busy;
	// drivers whose orders completed or were cancelled are free again.
	GetAllFreeByFleet(ctx context.Context, fleetID kernel.UUID) ([]*driver.Driver, error)
}
