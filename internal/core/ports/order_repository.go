package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly created order.
	// Fails when an order with the same id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetForUpdate retrieves an order by id, locking its row for the remainder
	// of the transaction.
	GetForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetFirstPending retrieves the oldest order still in Pending status.
	// Used by automatic dispatch.
	GetFirstPending(ctx context.Context) (*order.Order, error)

	// GetActiveByVehicle retrieves the order holding an active binding
	// (Loading or InTransit) to the given vehicle. At most one such order
	// exists at a time.
	GetActiveByVehicle(ctx context.Context, plate kernel.PlateNumber) (*order.Order, error)
}
