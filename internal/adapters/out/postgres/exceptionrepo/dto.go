// Package exceptionrepo provides data transfer objects and mapping functions
// for exception record persistence.
package exceptionrepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/exception"
	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting exception records.
type RecordDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehiclePlate  string    `gorm:"type:varchar(32);not null;index"`
	DriverID      string    `gorm:"type:varchar(64);not null;index"`
	ExceptionType string    `gorm:"type:varchar(64);not null"`
	SpecificEvent string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	HandleStatus  int       `gorm:"type:int;not null;index"`
	OccurredAt    time.Time `gorm:"type:timestamptz;not null;index"`
}

// TableName overrides GORM's default naming to use "exception_records".
func (RecordDTO) TableName() string {
	return "exception_records"
}

func fromDomain(record *exception.Record) RecordDTO {
	return RecordDTO{
		ID:            record.ID().Bytes(),
		VehiclePlate:  record.VehiclePlate().String(),
		DriverID:      record.DriverID().String(),
		ExceptionType: record.ExceptionType(),
		SpecificEvent: record.SpecificEvent(),
		Description:   record.Description(),
		HandleStatus:  int(record.HandleStatus()),
		OccurredAt:    record.OccurredAt(),
	}
}

func toDomain(dto RecordDTO) (*exception.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	plate, err := kernel.NewPlateNumber(dto.VehiclePlate)
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.NewDriverID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return exception.RestoreRecord(
		id,
		plate,
		driverID,
		dto.ExceptionType,
		dto.SpecificEvent,
		dto.Description,
		exception.HandleStatus(dto.HandleStatus),
		dto.OccurredAt,
	)
}
