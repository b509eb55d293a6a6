package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var (
	ErrCreateFleetCommandIsNotConstructed = errors.New(
		"CreateFleetCommand must be created via NewCreateFleetCommand constructor",
	)
	ErrFleetNameIsRequired = errors.New("fleet name is required")
)

// CreateFleetCommand represents a request to register a new fleet.
// The fleet ID is generated by the constructor so callers can read it back
// after the command succeeds.
//
// Example:
//
//	cmd, err := NewCreateFleetCommand("North Region")
//	if err != nil {
//	    return fmt.Errorf("invalid fleet data: %w", err)
//	}
//
//	handler := NewCreateFleetCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create fleet: %w", err)
//	}
//	fmt.Printf("Created fleet with ID: %s", cmd.FleetID())
type CreateFleetCommand struct { //nolint:recvcheck //using for validation
	fleetID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateFleetCommand creates a command to register a new fleet.
// Automatically generates a unique ID and validates that the name is not empty.
func NewCreateFleetCommand(name string) (CreateFleetCommand, error) {
	command := CreateFleetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFleetID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateFleetCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFleetCommand) Validate() error {
	return c.guard.Validate(ErrCreateFleetCommandIsNotConstructed)
}

// FleetID returns the generated fleet ID.
func (c CreateFleetCommand) FleetID() kernel.UUID {
	return c.fleetID
}

// Name returns the fleet name from the command.
func (c CreateFleetCommand) Name() string {
	return c.name
}

func (c *CreateFleetCommand) setFleetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.fleetID = id
	return nil
}

func (c *CreateFleetCommand) setName(name string) error {
	if name == "" {
		return ErrFleetNameIsRequired
	}

	c.name = name
	return nil
}
