package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand represents a request to move a loading order onto the road.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command to start transit for an order.
func NewStartTransitCommand(orderID kernel.OrderID) (StartTransitCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartTransitCommand{}, err
	}

	return StartTransitCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c StartTransitCommand) OrderID() kernel.OrderID {
	return c.orderID
}
