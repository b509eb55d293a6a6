package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new vehicle in a fleet.
// Encapsulates the plate number, owning fleet and the vehicle's load ceiling.
//
// Example:
//
//	plate, _ := kernel.NewPlateNumber("V-100")
//	capacity, _ := vehicle.NewCapacity(5000, 20)
//	cmd, err := NewCreateVehicleCommand(plate, fleetID, capacity)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create vehicle: %w", err)
//	}
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	plate    kernel.PlateNumber
	fleetID  kernel.UUID
	capacity vehicle.Capacity

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Validates the plate number, fleet ID and capacity.
func NewCreateVehicleCommand(
	plate kernel.PlateNumber,
	fleetID kernel.UUID,
	capacity vehicle.Capacity,
) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPlate(plate),
		command.setFleetID(fleetID),
		command.setCapacity(capacity),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// Plate returns the plate number from the command.
func (c CreateVehicleCommand) Plate() kernel.PlateNumber {
	return c.plate
}

// FleetID returns the owning fleet ID from the command.
func (c CreateVehicleCommand) FleetID() kernel.UUID {
	return c.fleetID
}

// Capacity returns the vehicle capacity from the command.
func (c CreateVehicleCommand) Capacity() vehicle.Capacity {
	return c.capacity
}

func (c *CreateVehicleCommand) setPlate(plate kernel.PlateNumber) error {
	if err := plate.Validate(); err != nil {
		return err
	}

	c.plate = plate
	return nil
}

func (c *CreateVehicleCommand) setFleetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.fleetID = id
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity vehicle.Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}

	c.capacity = capacity
	return nil
}
