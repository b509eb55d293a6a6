package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/ports"
)

// CancelOrderCommandHandler cancels an undelivered order. When the order was
// already bound to a vehicle, the vehicle is released back to Idle unless it
// is flagged Exception.
type CancelOrderCommandHandler struct {
	uowFactory TransitUoWFactory
	clock      ports.Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory TransitUoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	wasActive := orderEntity.Status().IsActive()
	if err = orderEntity.Cancel(h.clock.Now()); err != nil {
		return err
	}

	if wasActive {
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
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
