package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var (
	ErrRecordExceptionCommandIsNotConstructed = errors.New(
		"RecordExceptionCommand must be created via NewRecordExceptionCommand constructor",
	)
	ErrExceptionTypeIsRequired = errors.New("exception type is required")
	ErrSpecificEventIsRequired = errors.New("specific event is required")
)

// RecordExceptionCommand represents a request to file an exception report
// against a vehicle and the driver involved. The record ID is generated by
// the constructor so callers can read it back after the command succeeds.
//
// Example:
//
//	cmd, err := NewRecordExceptionCommand(plate, driverID, "breakdown", "engine failure", "on highway 4")
//	if err != nil {
//	    return fmt.Errorf("invalid exception data: %w", err)
//	}
//
//	handler := NewRecordExceptionCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record exception: %w", err)
//	}
//	fmt.Printf("Recorded exception %s", cmd.RecordID())
type RecordExceptionCommand struct { //nolint:recvcheck //using for validation
	recordID      kernel.UUID
	vehiclePlate  kernel.PlateNumber
	driverID      kernel.DriverID
	exceptionType string
	specificEvent string
	description   string

	guard guard.ConstructorGuard
}

// NewRecordExceptionCommand creates a command to file an exception report.
// The description is optional; everything else is required.
func NewRecordExceptionCommand(
	vehiclePlate kernel.PlateNumber,
	driverID kernel.DriverID,
	exceptionType string,
	specificEvent string,
	description string,
) (RecordExceptionCommand, error) {
	command := RecordExceptionCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRecordID(kernel.NewUUID()),
		command.setVehiclePlate(vehiclePlate),
		command.setDriverID(driverID),
		command.setExceptionType(exceptionType),
		command.setSpecificEvent(specificEvent),
	); err != nil {
		return RecordExceptionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordExceptionCommand) Validate() error {
	return c.guard.Validate(ErrRecordExceptionCommandIsNotConstructed)
}

// RecordID returns the generated exception record ID.
func (c RecordExceptionCommand) RecordID() kernel.UUID {
	return c.recordID
}

// VehiclePlate returns the involved vehicle's plate number.
func (c RecordExceptionCommand) VehiclePlate() kernel.PlateNumber {
	return c.vehiclePlate
}

// DriverID returns the involved driver's ID.
func (c RecordExceptionCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// ExceptionType returns the exception category from the command.
func (c RecordExceptionCommand) ExceptionType() string {
	return c.exceptionType
}

// SpecificEvent returns the concrete event label from the command.
func (c RecordExceptionCommand) SpecificEvent() string {
	return c.specificEvent
}

// Description returns the optional free-form description.
func (c RecordExceptionCommand) Description() string {
	return c.description
}

func (c *RecordExceptionCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.recordID = id
	return nil
}

func (c *RecordExceptionCommand) setVehiclePlate(plate kernel.PlateNumber) error {
	if err := plate.Validate(); err != nil {
		return err
	}

	c.vehiclePlate = plate
	return nil
}

func (c *RecordExceptionCommand) setDriverID(id kernel.DriverID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *RecordExceptionCommand) setExceptionType(exceptionType string) error {
	if exceptionType == "" {
		return ErrExceptionTypeIsRequired
	}

	c.exceptionType = exceptionType
	return nil
}

func (c *RecordExceptionCommand) setSpecificEvent(specificEvent string) error {
	if specificEvent == "" {
		return ErrSpecificEventIsRequired
	}

	c.specificEvent = specificEvent
	return nil
}
