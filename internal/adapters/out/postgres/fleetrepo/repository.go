package fleetrepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/fleet"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFleetRepository implements FleetRepository using GORM.
type GormFleetRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormFleetRepository creates a new GORM fleet repository.
func NewGormFleetRepository(db *gorm.DB, tracker aggregateTracker) *GormFleetRepository {
	return &GormFleetRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fleet to the database.
func (r *GormFleetRepository) Add(ctx context.Context, aggregate *fleet.Fleet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("fleetId", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a fleet by id.
func (r *GormFleetRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Fleet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FleetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fleet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
