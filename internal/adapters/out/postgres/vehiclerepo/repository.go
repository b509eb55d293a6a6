package vehiclerepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
// A duplicate plate number surfaces as errs.ErrStateConflict.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("plateNumber", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Plate().String(), aggregate)
	return nil
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Plate().String(), aggregate)
	return nil
}

// Get retrieves a vehicle by plate number.
func (r *GormVehicleRepository) Get(ctx context.Context, plate kernel.PlateNumber) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db, plate)
}

// GetForUpdate retrieves a vehicle by plate number with a row-level lock.
// The lock is held until the surrounding transaction ends.
func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, plate kernel.PlateNumber) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), plate)
}

func (r *GormVehicleRepository) get(ctx context.Context, db *gorm.DB, plate kernel.PlateNumber) (*vehicle.Vehicle, error) {
	if err := plate.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := db.WithContext(ctx).First(&dto, "plate_number = ?", plate.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", plate.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllIdle retrieves every vehicle currently in Idle status.
func (r *GormVehicleRepository) GetAllIdle(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(vehicle.Idle)).
		Order("plate_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
