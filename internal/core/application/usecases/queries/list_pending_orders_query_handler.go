package queries

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListPendingOrdersQueryHandler retrieves the dispatch backlog from the database.
type ListPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListPendingOrdersQueryHandler creates a handler for backlog queries.
func NewListPendingOrdersQueryHandler(db *gorm.DB) ListPendingOrdersQueryHandler {
	return ListPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending orders.
// Results are sorted by order ID for consistent output.
func (h ListPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPendingOrdersQuery,
) ([]ListPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			destination,
			cargo_weight,
			cargo_volume
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, int(order.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListPendingOrdersQueryResponse, 0)

	for rows.Next() {
		var resp ListPendingOrdersQueryResponse
		var id string

		err = rows.Scan(
			&id,
			&resp.Destination,
			&resp.CargoWeight,
			&resp.CargoVolume,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.NewOrderID(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
