package commands

import (
	"context"

	"fleetdispatch/internal/core/ports"
)

// TxManager controls the transaction boundary of a unit of work.
type TxManager interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type FleetRepoFactory interface {
	FleetRepository() ports.FleetRepository
}

type VehicleRepoFactory interface {
	VehicleRepository() ports.VehicleRepository
}

type DriverRepoFactory interface {
	DriverRepository() ports.DriverRepository
}

type OrderRepoFactory interface {
	OrderRepository() ports.OrderRepository
}

type ExceptionRepoFactory interface {
	ExceptionRepository() ports.ExceptionRepository
}

// Per-handler units of work. Each handler depends only on the
// repositories it actually touches.
type (
	CreateFleetUoW interface {
		TxManager
		FleetRepoFactory
	}

	CreateVehicleUoW interface {
		TxManager
		FleetRepoFactory
		VehicleRepoFactory
	}

	CreateDriverUoW interface {
		TxManager
		FleetRepoFactory
		DriverRepoFactory
	}

	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	AssignOrderUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
	}

	TransitUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
	}

	RecordExceptionUoW interface {
		TxManager
		VehicleRepoFactory
		DriverRepoFactory
		ExceptionRepoFactory
	}

	ResolveExceptionUoW interface {
		TxManager
		VehicleRepoFactory
		OrderRepoFactory
		ExceptionRepoFactory
	}

	DispatchPendingUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
	}
)

type (
	CreateFleetUoWFactory interface {
		Create() CreateFleetUoW
	}

	CreateVehicleUoWFactory interface {
		Create() CreateVehicleUoW
	}

	CreateDriverUoWFactory interface {
		Create() CreateDriverUoW
	}

	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	AssignOrderUoWFactory interface {
		Create() AssignOrderUoW
	}

	TransitUoWFactory interface {
		Create() TransitUoW
	}

	RecordExceptionUoWFactory interface {
		Create() RecordExceptionUoW
	}

	ResolveExceptionUoWFactory interface {
		Create() ResolveExceptionUoW
	}

	DispatchPendingUoWFactory interface {
		Create() DispatchPendingUoW
	}
)
