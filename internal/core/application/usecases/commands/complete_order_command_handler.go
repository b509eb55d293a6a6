package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/ports"
)

// CompleteOrderCommandHandler marks an InTransit order as delivered, stamps
// the delivery time and releases the bound vehicle back to Idle. A vehicle
// flagged Exception keeps its flag until its records are resolved.
type CompleteOrderCommandHandler struct {
	uowFactory TransitUoWFactory
	clock      ports.Clock
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory TransitUoWFactory, clock ports.Clock) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	vehicleRepo := uow.VehicleRepository()

	orderEntity, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderEntity.Complete(h.clock.Now()); err != nil {
		return err
	}

	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, *orderEntity.VehiclePlate())
	if err != nil {
		return err
	}

	if vehicleEntity.Status() != vehicle.Exception {
		if err = vehicleEntity.Release(); err != nil {
			return err
		}
		if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
