package queries

import (
	"context"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// FleetMonthlyReportQueryHandler builds the per-vehicle monthly activity
// report. Orders count toward the month their delivery finished in; exception
// records toward the month they occurred in. Utilization is computed against
// the elapsed part of the month, so a report pulled mid-month is not skewed
// by days that have not happened yet.
type FleetMonthlyReportQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

// NewFleetMonthlyReportQueryHandler creates a handler for monthly reports.
func NewFleetMonthlyReportQueryHandler(db *gorm.DB, clock ports.Clock) FleetMonthlyReportQueryHandler {
	return FleetMonthlyReportQueryHandler{db: db, clock: clock}
}

// Handle executes the report query. Every vehicle of the fleet gets a row,
// including vehicles with no activity in the month.
func (h FleetMonthlyReportQueryHandler) Handle(
	ctx context.Context,
	query FleetMonthlyReportQuery,
) ([]FleetMonthlyReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var fleetCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM fleets WHERE id = ?`, query.FleetID().Bytes()).
		Scan(&fleetCount).Error
	if err != nil {
		return nil, err
	}
	if fleetCount == 0 {
		return nil, errs.NewObjectNotFoundError("fleetId", query.FleetID().String())
	}

	monthStart := time.Date(query.Year(), query.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.plate_number,
			COUNT(o.id),
			COALESCE(SUM(o.cargo_weight), 0),
			COALESCE(SUM(o.cargo_volume), 0),
			COALESCE(SUM(EXTRACT(EPOCH FROM (o.end_time - o.start_time))), 0),
			(
				SELECT COUNT(*)
				FROM exception_records e
				WHERE e.vehicle_plate = v.plate_number
				  AND e.occurred_at >= ? AND e.occurred_at < ?
			)
		FROM vehicles v
		LEFT JOIN orders o
			ON o.vehicle_plate = v.plate_number
			AND o.status = ?
			AND o.end_time >= ? AND o.end_time < ?
		WHERE v.fleet_id = ?
		GROUP BY v.plate_number
		ORDER BY v.plate_number
	`, monthStart, monthEnd, int(order.Completed), monthStart, monthEnd, query.FleetID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	elapsed := h.elapsedSeconds(monthStart, monthEnd)
	report := make([]FleetMonthlyReportQueryResponse, 0)

	for rows.Next() {
		var resp FleetMonthlyReportQueryResponse
		var plate string
		var busySeconds float64

		err = rows.Scan(
			&plate,
			&resp.OrdersCompleted,
			&resp.TotalWeight,
			&resp.TotalVolume,
			&busySeconds,
			&resp.ExceptionCount,
		)
		if err != nil {
			return nil, err
		}

		plateNumber, plateErr := kernel.NewPlateNumber(plate)
		if plateErr != nil {
			return nil, plateErr
		}
		resp.Plate = plateNumber

		if elapsed > 0 {
			resp.Utilization = busySeconds / elapsed
			if resp.Utilization > 1 {
				resp.Utilization = 1
			}
		}

		report = append(report, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}

// elapsedSeconds returns the covered portion of the month in seconds. For a
// past month that is the whole month; for the current month only the part up
// to now; for a future month zero.
func (h FleetMonthlyReportQueryHandler) elapsedSeconds(monthStart, monthEnd time.Time) float64 {
	now := h.clock.Now().UTC()
	if now.After(monthEnd) {
		now = monthEnd
	}
	if now.Before(monthStart) {
		return 0
	}
	return now.Sub(monthStart).Seconds()
}
