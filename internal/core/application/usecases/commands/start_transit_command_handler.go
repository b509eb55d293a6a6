package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/vehicle"
)

// StartTransitCommandHandler moves a Loading order into InTransit and advances
// the bound vehicle with it. A vehicle flagged Exception keeps its flag; only
// the order progresses.
type StartTransitCommandHandler struct {
	uowFactory TransitUoWFactory
}

// NewStartTransitCommandHandler creates a handler for starting transit.
func NewStartTransitCommandHandler(uowFactory TransitUoWFactory) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start transit command.
func (h StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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

	if err = orderEntity.StartTransit(); err != nil {
		return err
	}

	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, *orderEntity.VehiclePlate())
	if err != nil {
		return err
	}

	if vehicleEntity.Status() == vehicle.Loading {
		if err = vehicleEntity.StartTransit(); err != nil {
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
