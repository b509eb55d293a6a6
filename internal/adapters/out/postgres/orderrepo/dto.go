// Package orderrepo provides data transfer objects and mapping functions for
// order persistence.
package orderrepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The vehicle and driver bindings are nullable; they are set on assignment and
// survive completion for reporting.
type OrderDTO struct {
	ID           string     `gorm:"type:varchar(64);primaryKey"`
	Destination  string     `gorm:"type:varchar(255);not null"`
	CargoWeight  int        `gorm:"type:int;not null"`
	CargoVolume  int        `gorm:"type:int;not null"`
	Status       int        `gorm:"type:int;not null;index"`
	VehiclePlate *string    `gorm:"type:varchar(32);index"`
	DriverID     *string    `gorm:"type:varchar(64);index"`
	StartTime    *time.Time `gorm:"type:timestamptz"`
	EndTime      *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().String(),
		Destination: aggregate.Destination(),
		CargoWeight: aggregate.Cargo().Weight(),
		CargoVolume: aggregate.Cargo().Volume(),
		Status:      int(aggregate.Status()),
		StartTime:   aggregate.StartTime(),
		EndTime:     aggregate.EndTime(),
	}

	if aggregate.VehiclePlate() != nil {
		plate := aggregate.VehiclePlate().String()
		dto.VehiclePlate = &plate
	}
	if aggregate.DriverID() != nil {
		driverID := aggregate.DriverID().String()
		dto.DriverID = &driverID
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	cargo, err := kernel.NewCargo(dto.CargoWeight, dto.CargoVolume)
	if err != nil {
		return nil, err
	}

	var vehiclePlate *kernel.PlateNumber
	if dto.VehiclePlate != nil {
		plate, plateErr := kernel.NewPlateNumber(*dto.VehiclePlate)
		if plateErr != nil {
			return nil, plateErr
		}
		vehiclePlate = &plate
	}

	var driverID *kernel.DriverID
	if dto.DriverID != nil {
		did, didErr := kernel.NewDriverID(*dto.DriverID)
		if didErr != nil {
			return nil, didErr
		}
		driverID = &did
	}

	return order.RestoreOrder(
		id,
		dto.Destination,
		cargo,
		order.Status(dto.Status),
		vehiclePlate,
		driverID,
		dto.StartTime,
		dto.EndTime,
	)
}
