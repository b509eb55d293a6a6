// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence.
package driverrepo

import (
	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	DriverID     string    `gorm:"type:varchar(64);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	LicenseLevel int       `gorm:"type:int;not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	FleetID      uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		DriverID:     aggregate.ID().String(),
		Name:         aggregate.Name(),
		LicenseLevel: aggregate.LicenseLevel(),
		Phone:        aggregate.Phone(),
		FleetID:      aggregate.FleetID().Bytes(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.NewDriverID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	fleetID, err := kernel.UUIDFromBytes(dto.FleetID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.LicenseLevel, dto.Phone, fleetID)
}
