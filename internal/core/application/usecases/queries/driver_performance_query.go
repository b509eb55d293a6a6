package queries

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/exception"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrDriverPerformanceQueryIsNotConstructed = errors.New(
	"DriverPerformanceQuery must be created via NewDriverPerformanceQuery constructor",
)

// DriverPerformanceQuery retrieves one driver's delivery statistics paired
// with the driver's exception history. Both sides honor the optional date
// range: orders are filtered by assignment time, exceptions by occurrence
// time. A nil bound leaves that side open.
type DriverPerformanceQuery struct {
	driverID  kernel.DriverID
	startDate *time.Time
	endDate   *time.Time

	guard guard.ConstructorGuard
}

// NewDriverPerformanceQuery creates a query for a driver's performance view.
func NewDriverPerformanceQuery(
	driverID kernel.DriverID,
	startDate, endDate *time.Time,
) (DriverPerformanceQuery, error) {
	if err := driverID.Validate(); err != nil {
		return DriverPerformanceQuery{}, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return DriverPerformanceQuery{}, errs.NewValueIsInvalidError("endDate")
	}

	return DriverPerformanceQuery{
		driverID:  driverID,
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DriverPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrDriverPerformanceQueryIsNotConstructed)
}

// DriverID returns the driver under review.
func (q DriverPerformanceQuery) DriverID() kernel.DriverID {
	return q.driverID
}

// StartDate returns the inclusive lower bound of the range, nil when open.
func (q DriverPerformanceQuery) StartDate() *time.Time {
	return q.startDate
}

// EndDate returns the inclusive upper bound of the range, nil when open.
func (q DriverPerformanceQuery) EndDate() *time.Time {
	return q.endDate
}

// DriverPerformanceSummary holds the aggregate delivery figures.
// AvgDeliverySeconds covers completed orders only and is zero when the driver
// has not completed any.
type DriverPerformanceSummary struct {
	OrdersAssigned     int
	OrdersCompleted    int
	TotalWeight        int
	TotalVolume        int
	AvgDeliverySeconds float64
}

// DriverPerformanceException is one entry of the driver's exception history.
type DriverPerformanceException struct {
	ID            kernel.UUID
	VehiclePlate  kernel.PlateNumber
	ExceptionType string
	SpecificEvent string
	Description   string
	HandleStatus  exception.HandleStatus
	OccurredAt    time.Time
}

// DriverPerformanceQueryResponse pairs the summary with the exception history,
// ordered by occurrence.
type DriverPerformanceQueryResponse struct {
	DriverID   kernel.DriverID
	Summary    DriverPerformanceSummary
	Exceptions []DriverPerformanceException
}
