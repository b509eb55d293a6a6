// Package vehiclerepo provides data transfer objects and mapping functions for
// vehicle persistence. It implements the repository pattern for the vehicle
// aggregate, converting between domain entities and database rows.
package vehiclerepo

import (
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// The plate number is the natural primary key.
type VehicleDTO struct {
	PlateNumber string    `gorm:"type:varchar(32);primaryKey"`
	FleetID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MaxWeight   int       `gorm:"type:int;not null"`
	MaxVolume   int       `gorm:"type:int;not null"`
	Status      int       `gorm:"type:int;not null;index"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		PlateNumber: aggregate.Plate().String(),
		FleetID:     aggregate.FleetID().Bytes(),
		MaxWeight:   aggregate.Capacity().MaxWeight(),
		MaxVolume:   aggregate.Capacity().MaxVolume(),
		Status:      int(aggregate.Status()),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	plate, err := kernel.NewPlateNumber(dto.PlateNumber)
	if err != nil {
		return nil, err
	}

	fleetID, err := kernel.UUIDFromBytes(dto.FleetID[:])
	if err != nil {
		return nil, err
	}

	capacity, err := vehicle.NewCapacity(dto.MaxWeight, dto.MaxVolume)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(plate, fleetID, capacity, vehicle.Status(dto.Status))
}
