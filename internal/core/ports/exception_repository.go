package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/exception"
	"fleetdispatch/internal/core/domain/model/kernel"
)

// ExceptionRepository defines the persistence contract for exception records.
// Records are append-only; Update only ever advances the handle status.
type ExceptionRepository interface {
	// Add persists a newly recorded exception.
	Add(ctx context.Context, record *exception.Record) error

	// Update persists a handle-status change of an existing record.
	Update(ctx context.Context, record *exception.Record) error

	// Get retrieves a record by id.
	Get(ctx context.Context, id kernel.UUID) (*exception.Record, error)

	// GetForUpdate retrieves a record by id, locking its row for the remainder
	// of the transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*exception.Record, error)

	// CountUnresolvedByVehicle counts the records referencing the vehicle whose
	// handle status is not Resolved. Zero means the vehicle's Exception flag
	// may be cleared.
	CountUnresolvedByVehicle(ctx context.Context, plate kernel.PlateNumber) (int64, error)
}
