package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/pkg/errs"
)

// ErrDuplicateOrderID is returned when an order with the same ID is already
// registered.
var ErrDuplicateOrderID = errors.New("order with this ID already exists")

// CreateOrderCommandHandler handles the business logic for order intake.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Creates a new Pending order and persists it within a transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderEntity, err := order.NewOrder(cmd.OrderID(), cmd.Destination(), cmd.Cargo())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		if errors.Is(err, errs.ErrStateConflict) {
			return ErrDuplicateOrderID
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
