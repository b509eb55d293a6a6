package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery retrieves the driver roster, optionally narrowed to one fleet.
type ListDriversQuery struct {
	fleetID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDriversQuery creates a query to list drivers. A nil fleet ID lists
// drivers across all fleets.
func NewListDriversQuery(fleetID *kernel.UUID) (ListDriversQuery, error) {
	if fleetID != nil {
		if err := fleetID.Validate(); err != nil {
			return ListDriversQuery{}, err
		}
	}

	return ListDriversQuery{
		fleetID: fleetID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

// FleetID returns the optional fleet filter.
func (q ListDriversQuery) FleetID() *kernel.UUID {
	return q.fleetID
}

// ListDriversQueryResponse represents one driver in the roster listing.
type ListDriversQueryResponse struct {
	ID           kernel.DriverID
	Name         string
	LicenseLevel int
	Phone        string
	FleetID      kernel.UUID
	FleetName    string
}
