package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

var (
	// ErrNoPendingOrder is returned when there is nothing to dispatch.
	ErrNoPendingOrder = errors.New("no pending order found")

	// ErrNoVehicleAvailable is returned when no idle vehicle can carry the order.
	ErrNoVehicleAvailable = errors.New("no suitable vehicle available")

	// ErrNoDriverAvailable is returned when the chosen vehicle's fleet has no
	// free driver.
	ErrNoDriverAvailable = errors.New("no free driver available")
)

// DispatchPendingCommandHandler runs one automatic dispatch round. It takes
// the oldest pending order, picks the tightest-fitting idle vehicle and a
// free driver from that vehicle's fleet, and binds all three within a single
// transaction.
//
// Example:
//
//	handler := NewDispatchPendingCommandHandler(uowFactory, clock)
//	err := handler.Handle(ctx, NewDispatchPendingCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrder):
//	    log.Println("Queue is empty")
//	case errors.Is(err, ErrNoVehicleAvailable):
//	    log.Println("All vehicles are busy or too small")
//	case errors.Is(err, ErrNoDriverAvailable):
//	    log.Println("No free driver in the matched fleet")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchPendingCommandHandler struct {
	uowFactory DispatchPendingUoWFactory
	clock      ports.Clock
}

// NewDispatchPendingCommandHandler creates a handler for automatic dispatch.
func NewDispatchPendingCommandHandler(
	uowFactory DispatchPendingUoWFactory,
	clock ports.Clock,
) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes one dispatch round.
func (h DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) error {
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

	orderEntity, err := orderRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrder
	}
	if err != nil {
		return err
	}

	// GetFirstPending reads without a lock. Re-fetch the picked order under
	// FOR UPDATE and re-check it is still assignable; a concurrent manual
	// assignment may have claimed it in between. The next round retries.
	orderEntity, err = orderRepo.GetForUpdate(ctx, orderEntity.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrder
	}
	if err != nil {
		return err
	}
	if err = orderEntity.ValidateAssign(); err != nil {
		return ErrNoPendingOrder
	}

	vehicles, err := vehicleRepo.GetAllIdle(ctx)
	if err != nil {
		return err
	}

	candidate, err := services.NewVehicleDispatcher().Dispatch(orderEntity, vehicles)
	if errors.Is(err, services.ErrVehicleNotFound) {
		return ErrNoVehicleAvailable
	}
	if err != nil {
		return err
	}

	// Same discipline for the vehicle: the Idle snapshot is stale by the time
	// the candidate is chosen, so lock its row and re-verify the status.
	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, candidate.Plate())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoVehicleAvailable
	}
	if err != nil {
		return err
	}
	if vehicleEntity.Status() != vehicle.Idle {
		return ErrNoVehicleAvailable
	}

	drivers, err := uow.DriverRepository().GetAllFreeByFleet(ctx, vehicleEntity.FleetID())
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoDriverAvailable
	}

	err = services.NewOrderAssignment().Assign(orderEntity, vehicleEntity, drivers[0], h.clock.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
