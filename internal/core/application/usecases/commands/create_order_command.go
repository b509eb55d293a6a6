package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDestinationIsRequired = errors.New("destination is required")
)

// CreateOrderCommand represents a request to register a new cargo order.
// New orders always enter the system in Pending status with no vehicle or
// driver bound.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	destination string
	cargo       kernel.Cargo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new cargo order.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	destination string,
	cargo kernel.Cargo,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDestination(destination),
		command.setCargo(cargo),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Destination returns the delivery destination from the command.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// Cargo returns the cargo details from the command.
func (c CreateOrderCommand) Cargo() kernel.Cargo {
	return c.cargo
}

func (c *CreateOrderCommand) setOrderID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setCargo(cargo kernel.Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}

	c.cargo = cargo
	return nil
}
