package queries

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrFleetMonthlyReportQueryIsNotConstructed = errors.New(
	"FleetMonthlyReportQuery must be created via NewFleetMonthlyReportQuery constructor",
)

const (
	reportMinYear = 2000
	reportMaxYear = 2100
)

// FleetMonthlyReportQuery aggregates one fleet's activity over one calendar
// month: per-vehicle delivered orders, hauled cargo, exception counts and
// time utilization.
//
// Example:
//
//	query, _ := NewFleetMonthlyReportQuery(fleetID, 2026, time.March)
//	handler := NewFleetMonthlyReportQueryHandler(db, clock)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//	for _, row := range report {
//	    fmt.Printf("%s: %d orders, %.0f%% utilized\n",
//	        row.Plate, row.OrdersCompleted, row.Utilization*100)
//	}
type FleetMonthlyReportQuery struct { //nolint:recvcheck //using for validation
	fleetID kernel.UUID
	year    int
	month   time.Month

	guard guard.ConstructorGuard
}

// NewFleetMonthlyReportQuery creates a query for one fleet's monthly report.
func NewFleetMonthlyReportQuery(fleetID kernel.UUID, year int, month time.Month) (FleetMonthlyReportQuery, error) {
	if err := fleetID.Validate(); err != nil {
		return FleetMonthlyReportQuery{}, err
	}
	if year < reportMinYear || year > reportMaxYear {
		return FleetMonthlyReportQuery{}, errs.NewValueIsOutOfRangeError("year", year, reportMinYear, reportMaxYear)
	}
	if month < time.January || month > time.December {
		return FleetMonthlyReportQuery{}, errs.NewValueIsOutOfRangeError(
			"month", int(month), int(time.January), int(time.December))
	}

	return FleetMonthlyReportQuery{
		fleetID: fleetID,
		year:    year,
		month:   month,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FleetMonthlyReportQuery) Validate() error {
	return q.guard.Validate(ErrFleetMonthlyReportQueryIsNotConstructed)
}

// FleetID returns the fleet under report.
func (q FleetMonthlyReportQuery) FleetID() kernel.UUID {
	return q.fleetID
}

// Year returns the report year.
func (q FleetMonthlyReportQuery) Year() int {
	return q.year
}

// Month returns the report month.
func (q FleetMonthlyReportQuery) Month() time.Month {
	return q.month
}

// FleetMonthlyReportQueryResponse represents one vehicle's activity row.
// Utilization is the fraction of the elapsed month the vehicle spent on
// completed trips, between 0 and 1.
type FleetMonthlyReportQueryResponse struct {
	Plate           kernel.PlateNumber
	OrdersCompleted int
	TotalWeight     int
	TotalVolume     int
	ExceptionCount  int
	Utilization     float64
}
