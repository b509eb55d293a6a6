package queries

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDriversQueryHandler retrieves the driver roster from the database.
type ListDriversQueryHandler struct {
	db *gorm.DB
}

// NewListDriversQueryHandler creates a handler for driver roster queries.
func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve drivers matching the filter.
// Results are sorted by driver ID for consistent output.
func (h ListDriversQueryHandler) Handle(
	ctx context.Context,
	query ListDriversQuery,
) ([]ListDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			d.driver_id,
			d.name,
			d.license_level,
			d.phone,
			d.fleet_id,
			f.name
		FROM drivers d
		JOIN fleets f ON f.id = d.fleet_id
	`
	args := make([]any, 0, 1)
	if query.FleetID() != nil {
		sql += " WHERE d.fleet_id = ?"
		args = append(args, query.FleetID().Bytes())
	}
	sql += " ORDER BY d.driver_id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]ListDriversQueryResponse, 0)

	for rows.Next() {
		var resp ListDriversQueryResponse
		var driverID string
		var fleetID uuid.UUID

		err = rows.Scan(
			&driverID,
			&resp.Name,
			&resp.LicenseLevel,
			&resp.Phone,
			&fleetID,
			&resp.FleetName,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.NewDriverID(driverID)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = id

		fid, fidErr := kernel.UUIDFromBytes(fleetID[:])
		if fidErr != nil {
			return nil, fidErr
		}
		resp.FleetID = fid

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
