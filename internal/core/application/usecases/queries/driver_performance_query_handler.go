package queries

import (
	"context"
	"time"

	"fleetdispatch/internal/core/domain/model/exception"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverPerformanceQueryHandler builds a driver's performance view from the
// database. Assigned counts every order the driver was bound to within the
// query's date range; the cargo totals and delivery-time average cover
// completed orders only.
type DriverPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewDriverPerformanceQueryHandler creates a handler for performance queries.
func NewDriverPerformanceQueryHandler(db *gorm.DB) DriverPerformanceQueryHandler {
	return DriverPerformanceQueryHandler{db: db}
}

// Handle executes the performance query.
// Fails with errs.ErrObjectNotFound when the driver does not exist.
func (h DriverPerformanceQueryHandler) Handle(
	ctx context.Context,
	query DriverPerformanceQuery,
) (DriverPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverPerformanceQueryResponse{}, err
	}

	var driverCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM drivers WHERE driver_id = ?`, query.DriverID().String()).
		Scan(&driverCount).Error
	if err != nil {
		return DriverPerformanceQueryResponse{}, err
	}
	if driverCount == 0 {
		return DriverPerformanceQueryResponse{}, errs.NewObjectNotFoundError("driverId", query.DriverID().String())
	}

	response := DriverPerformanceQueryResponse{DriverID: query.DriverID()}

	if err = h.scanSummary(ctx, query, &response.Summary); err != nil {
		return DriverPerformanceQueryResponse{}, err
	}

	if response.Exceptions, err = h.scanExceptions(ctx, query); err != nil {
		return DriverPerformanceQueryResponse{}, err
	}

	return response, nil
}

func (h DriverPerformanceQueryHandler) scanSummary(
	ctx context.Context,
	query DriverPerformanceQuery,
	summary *DriverPerformanceSummary,
) error {
	sql := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(cargo_weight) FILTER (WHERE status = ?), 0),
			COALESCE(SUM(cargo_volume) FILTER (WHERE status = ?), 0),
			COALESCE(AVG(EXTRACT(EPOCH FROM (end_time - start_time))) FILTER (WHERE status = ?), 0)
		FROM orders
		WHERE driver_id = ?
	`
	args := []any{
		int(order.Completed), int(order.Completed), int(order.Completed), int(order.Completed),
		query.DriverID().String(),
	}
	if query.StartDate() != nil {
		sql += " AND start_time >= ?"
		args = append(args, *query.StartDate())
	}
	if query.EndDate() != nil {
		sql += " AND start_time <= ?"
		args = append(args, *query.EndDate())
	}

	row := h.db.WithContext(ctx).Raw(sql, args...).Row()

	return row.Scan(
		&summary.OrdersAssigned,
		&summary.OrdersCompleted,
		&summary.TotalWeight,
		&summary.TotalVolume,
		&summary.AvgDeliverySeconds,
	)
}

func (h DriverPerformanceQueryHandler) scanExceptions(
	ctx context.Context,
	query DriverPerformanceQuery,
) ([]DriverPerformanceException, error) {
	sql := `
		SELECT
			id,
			vehicle_plate,
			exception_type,
			specific_event,
			description,
			handle_status,
			occurred_at
		FROM exception_records
		WHERE driver_id = ?
	`
	args := []any{query.DriverID().String()}
	if query.StartDate() != nil {
		sql += " AND occurred_at >= ?"
		args = append(args, *query.StartDate())
	}
	if query.EndDate() != nil {
		sql += " AND occurred_at <= ?"
		args = append(args, *query.EndDate())
	}
	sql += " ORDER BY occurred_at, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exceptions := make([]DriverPerformanceException, 0)

	for rows.Next() {
		var entry DriverPerformanceException
		var id uuid.UUID
		var plate string
		var handleStatus int
		var occurredAt time.Time

		err = rows.Scan(
			&id,
			&plate,
			&entry.ExceptionType,
			&entry.SpecificEvent,
			&entry.Description,
			&handleStatus,
			&occurredAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = recordID

		plateNumber, plateErr := kernel.NewPlateNumber(plate)
		if plateErr != nil {
			return nil, plateErr
		}
		entry.VehiclePlate = plateNumber

		status := exception.HandleStatus(handleStatus)
		if statusErr := status.Validate(); statusErr != nil {
			return nil, statusErr
		}
		entry.HandleStatus = status
		entry.OccurredAt = occurredAt

		exceptions = append(exceptions, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return exceptions, nil
}
