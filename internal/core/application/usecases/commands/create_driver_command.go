package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errors.New("driver name is required")
)

// CreateDriverCommand represents a request to register a new driver in a fleet.
// The phone number is optional; everything else is required. License level
// bounds are enforced by the driver aggregate.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID     kernel.DriverID
	name         string
	licenseLevel int
	phone        string
	fleetID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
func NewCreateDriverCommand(
	driverID kernel.DriverID,
	name string,
	licenseLevel int,
	phone string,
	fleetID kernel.UUID,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		licenseLevel: licenseLevel,
		phone:        phone,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setFleetID(fleetID),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c CreateDriverCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// Name returns the driver name from the command.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// LicenseLevel returns the license level from the command.
func (c CreateDriverCommand) LicenseLevel() int {
	return c.licenseLevel
}

// Phone returns the optional phone number from the command.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// FleetID returns the owning fleet ID from the command.
func (c CreateDriverCommand) FleetID() kernel.UUID {
	return c.fleetID
}

func (c *CreateDriverCommand) setDriverID(id kernel.DriverID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setFleetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.fleetID = id
	return nil
}
