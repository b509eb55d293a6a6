package exceptionrepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/exception"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExceptionRepository implements ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormExceptionRepository creates a new GORM exception record repository.
func NewGormExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormExceptionRepository {
	return &GormExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new exception record to the database.
func (r *GormExceptionRepository) Add(ctx context.Context, record *exception.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("recordId", err)
		}
		return err
	}

	r.tracker.TrackAggregate(record.ID().String(), record)
	return nil
}

// Update saves a handle-status change of an existing record.
func (r *GormExceptionRepository) Update(ctx context.Context, record *exception.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID().String(), record)
	return nil
}

// Get retrieves a record by id.
func (r *GormExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Record, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a record by id with a row-level lock.
func (r *GormExceptionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*exception.Record, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormExceptionRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*exception.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("exceptionRecord", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountUnresolvedByVehicle counts the vehicle's records not yet resolved.
func (r *GormExceptionRepository) CountUnresolvedByVehicle(ctx context.Context, plate kernel.PlateNumber) (int64, error) {
	if err := plate.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("vehicle_plate = ? AND handle_status <> ?", plate.String(), int(exception.Resolved)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
