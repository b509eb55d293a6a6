package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery retrieves the vehicle roster, optionally narrowed to one
// fleet and/or one operational status.
//
// Example:
//
//	status := vehicle.Idle
//	query, _ := NewListVehiclesQuery(nil, &status)
//	handler := NewListVehiclesQueryHandler(db)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vehicles: %w", err)
//	}
//	fmt.Printf("%d idle vehicles\n", len(vehicles))
type ListVehiclesQuery struct {
	fleetID *kernel.UUID
	status  *vehicle.Status

	guard guard.ConstructorGuard
}

// NewListVehiclesQuery creates a query to list vehicles. Both filters are
// optional; nil means no filtering on that dimension.
func NewListVehiclesQuery(fleetID *kernel.UUID, status *vehicle.Status) (ListVehiclesQuery, error) {
	if fleetID != nil {
		if err := fleetID.Validate(); err != nil {
			return ListVehiclesQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListVehiclesQuery{}, err
		}
	}

	return ListVehiclesQuery{
		fleetID: fleetID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

// FleetID returns the optional fleet filter.
func (q ListVehiclesQuery) FleetID() *kernel.UUID {
	return q.fleetID
}

// Status returns the optional status filter.
func (q ListVehiclesQuery) Status() *vehicle.Status {
	return q.status
}

// ListVehiclesQueryResponse represents one vehicle in the roster listing.
type ListVehiclesQueryResponse struct {
	Plate     kernel.PlateNumber
	FleetID   kernel.UUID
	FleetName string
	MaxWeight int
	MaxVolume int
	Status    vehicle.Status
}
