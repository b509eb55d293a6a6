package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/fleet"
	"fleetdispatch/internal/core/domain/model/kernel"
)

// FleetRepository defines the persistence contract for fleet aggregates.
type FleetRepository interface {
	// Add persists a newly created fleet.
	Add(ctx context.Context, fleet *fleet.Fleet) error

	// Get retrieves a fleet by id.
	Get(ctx context.Context, id kernel.UUID) (*fleet.Fleet, error)
}
