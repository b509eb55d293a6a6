package exception

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is the aggregate root for an operational exception: a breakdown,
// accident, or any event that takes a vehicle out of normal operation.
//
// Records are append-only. Creating one flags the referenced vehicle as
// Exception; resolving the last open record for a vehicle clears the flag.
// The referenced order binding, if any, is never touched by exception handling.
type Record struct {
	id            kernel.UUID
	vehiclePlate  kernel.PlateNumber
	driverID      kernel.DriverID
	exceptionType string
	specificEvent string
	description   string
	handleStatus  HandleStatus
	occurredAt    time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates an exception record in Unprocessed state.
// The description is optional; everything else is required.
func NewRecord(
	id kernel.UUID,
	vehiclePlate kernel.PlateNumber,
	driverID kernel.DriverID,
	exceptionType string,
	specificEvent string,
	description string,
	occurredAt time.Time,
) (*Record, error) {
	record := &Record{
		description:  description,
		handleStatus: Unprocessed,
		occurredAt:   occurredAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setVehiclePlate(vehiclePlate),
		record.setDriverID(driverID),
		record.setExceptionType(exceptionType),
		record.setSpecificEvent(specificEvent),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a record from persistence with an explicit
// handling state.
func RestoreRecord(
	id kernel.UUID,
	vehiclePlate kernel.PlateNumber,
	driverID kernel.DriverID,
	exceptionType string,
	specificEvent string,
	description string,
	handleStatus HandleStatus,
	occurredAt time.Time,
) (*Record, error) {
	record, err := NewRecord(id, vehiclePlate, driverID, exceptionType, specificEvent, description, occurredAt)
	if err != nil {
		return nil, err
	}

	if err = handleStatus.Validate(); err != nil {
		return nil, err
	}
	record.handleStatus = handleStatus

	return record, nil
}

// Validate ensures the Record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// VehiclePlate returns the plate of the vehicle the exception happened to.
func (r *Record) VehiclePlate() kernel.PlateNumber {
	return r.vehiclePlate
}

// DriverID returns the id of the driver involved.
func (r *Record) DriverID() kernel.DriverID {
	return r.driverID
}

// ExceptionType returns the coarse classification, e.g. "Mechanical".
func (r *Record) ExceptionType() string {
	return r.exceptionType
}

// SpecificEvent returns the concrete event, e.g. "Flat tire".
func (r *Record) SpecificEvent() string {
	return r.specificEvent
}

// Description returns the free-form detail, possibly empty.
func (r *Record) Description() string {
	return r.description
}

// HandleStatus returns the record's handling state.
func (r *Record) HandleStatus() HandleStatus {
	return r.handleStatus
}

// OccurredAt returns when the exception was recorded.
func (r *Record) OccurredAt() time.Time {
	return r.occurredAt
}

// StartProcessing marks the record as being handled by an operator.
func (r *Record) StartProcessing() error {
	newStatus, err := r.handleStatus.StartProcessing()
	if err != nil {
		return err
	}
	r.handleStatus = newStatus
	return nil
}

// Resolve closes the record. Whether the vehicle's Exception flag clears depends
// on the remaining open records for it, which the caller decides.
func (r *Record) Resolve() error {
	newStatus, err := r.handleStatus.Resolve()
	if err != nil {
		return err
	}
	r.handleStatus = newStatus
	return nil
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setVehiclePlate(plate kernel.PlateNumber) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	r.vehiclePlate = plate
	return nil
}

func (r *Record) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	r.driverID = driverID
	return nil
}

func (r *Record) setExceptionType(exceptionType string) error {
	if exceptionType == "" {
		return errs.NewValueIsRequiredError("exceptionType")
	}
	r.exceptionType = exceptionType
	return nil
}

func (r *Record) setSpecificEvent(specificEvent string) error {
	if specificEvent == "" {
		return errs.NewValueIsRequiredError("specificEvent")
	}
	r.specificEvent = specificEvent
	return nil
}
