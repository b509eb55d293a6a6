package queries

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListVehiclesQueryHandler retrieves the vehicle roster from the database.
// Uses direct SQL for read performance; the fleet name is joined in so the
// listing is self-contained.
type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewListVehiclesQueryHandler creates a handler for vehicle roster queries.
func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve vehicles matching the filters.
// Results are sorted by plate number for consistent output.
func (h ListVehiclesQueryHandler) Handle(
	ctx context.Context,
	query ListVehiclesQuery,
) ([]ListVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			v.plate_number,
			v.fleet_id,
			f.name,
			v.max_weight,
			v.max_volume,
			v.status
		FROM vehicles v
		JOIN fleets f ON f.id = v.fleet_id
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if query.FleetID() != nil {
		sql += " AND v.fleet_id = ?"
		args = append(args, query.FleetID().Bytes())
	}
	if query.Status() != nil {
		sql += " AND v.status = ?"
		args = append(args, int(*query.Status()))
	}
	sql += " ORDER BY v.plate_number"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]ListVehiclesQueryResponse, 0)

	for rows.Next() {
		var resp ListVehiclesQueryResponse
		var plate string
		var fleetID uuid.UUID
		var status int

		err = rows.Scan(
			&plate,
			&fleetID,
			&resp.FleetName,
			&resp.MaxWeight,
			&resp.MaxVolume,
			&status,
		)
		if err != nil {
			return nil, err
		}

		plateNumber, plateErr := kernel.NewPlateNumber(plate)
		if plateErr != nil {
			return nil, plateErr
		}
		resp.Plate = plateNumber

		id, idErr := kernel.UUIDFromBytes(fleetID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.FleetID = id

		vehicleStatus := vehicle.Status(status)
		if statusErr := vehicleStatus.Validate(); statusErr != nil {
			return nil, statusErr
		}
		resp.Status = vehicleStatus

		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
