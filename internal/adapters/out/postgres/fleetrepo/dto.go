// Package fleetrepo provides data transfer objects and mapping functions for
// fleet persistence.
package fleetrepo

import (
	"fleetdispatch/internal/core/domain/model/fleet"
	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FleetDTO represents the database structure for persisting fleet aggregates.
type FleetDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "fleets".
func (FleetDTO) TableName() string {
	return "fleets"
}

func fromDomain(aggregate *fleet.Fleet) FleetDTO {
	return FleetDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

func toDomain(dto FleetDTO) (*fleet.Fleet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return fleet.RestoreFleet(id, dto.Name)
}
