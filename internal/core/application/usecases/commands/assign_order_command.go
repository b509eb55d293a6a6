package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to bind a pending order to a
// specific vehicle and driver chosen by a dispatcher.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	plate    kernel.PlateNumber
	driverID kernel.DriverID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order.
func NewAssignOrderCommand(
	orderID kernel.OrderID,
	plate kernel.PlateNumber,
	driverID kernel.DriverID,
) (AssignOrderCommand, error) {
	command := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPlate(plate),
		command.setDriverID(driverID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c AssignOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Plate returns the vehicle plate number from the command.
func (c AssignOrderCommand) Plate() kernel.PlateNumber {
	return c.plate
}

// DriverID returns the driver ID from the command.
func (c AssignOrderCommand) DriverID() kernel.DriverID {
	return c.driverID
}

func (c *AssignOrderCommand) setOrderID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AssignOrderCommand) setPlate(plate kernel.PlateNumber) error {
	if err := plate.Validate(); err != nil {
		return err
	}

	c.plate = plate
	return nil
}

func (c *AssignOrderCommand) setDriverID(id kernel.DriverID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}
