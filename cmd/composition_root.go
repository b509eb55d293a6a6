package cmd

import (
	"time"

	"fleetdispatch/internal/adapters/out/postgres"
	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      ports.ClockFunc(time.Now),
	}
}

func (c *CompositionRoot) CreateCreateFleetCommandHandler() commands.CreateFleetCommandHandler {
	var f commands.CreateFleetUoWFactory = FuncCreateFleetUoWFactory(func() commands.CreateFleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFleetCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.CreateVehicleUoWFactory = FuncCreateVehicleUoWFactory(func() commands.CreateVehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.CreateDriverUoWFactory = FuncCreateDriverUoWFactory(func() commands.CreateDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.AssignOrderUoWFactory = FuncAssignOrderUoWFactory(func() commands.AssignOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	var f commands.TransitUoWFactory = FuncTransitUoWFactory(func() commands.TransitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartTransitCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.TransitUoWFactory = FuncTransitUoWFactory(func() commands.TransitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.TransitUoWFactory = FuncTransitUoWFactory(func() commands.TransitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRecordExceptionCommandHandler() commands.RecordExceptionCommandHandler {
	var f commands.RecordExceptionUoWFactory = FuncRecordExceptionUoWFactory(func() commands.RecordExceptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordExceptionCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateResolveExceptionCommandHandler() commands.ResolveExceptionCommandHandler {
	var f commands.ResolveExceptionUoWFactory = FuncResolveExceptionUoWFactory(func() commands.ResolveExceptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveExceptionCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchPendingCommandHandler() commands.DispatchPendingCommandHandler {
	var f commands.DispatchPendingUoWFactory = FuncDispatchPendingUoWFactory(func() commands.DispatchPendingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchPendingCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPendingOrdersQueryHandler() queries.ListPendingOrdersQueryHandler {
	return queries.NewListPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFleetMonthlyReportQueryHandler() queries.FleetMonthlyReportQueryHandler {
	return queries.NewFleetMonthlyReportQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateDriverPerformanceQueryHandler() queries.DriverPerformanceQueryHandler {
	return queries.NewDriverPerformanceQueryHandler(c.gormDB)
}

type FuncCreateFleetUoWFactory func() commands.CreateFleetUoW

func (f FuncCreateFleetUoWFactory) Create() commands.CreateFleetUoW {
	return f()
}

type FuncCreateVehicleUoWFactory func() commands.CreateVehicleUoW

func (f FuncCreateVehicleUoWFactory) Create() commands.CreateVehicleUoW {
	return f()
}

type FuncCreateDriverUoWFactory func() commands.CreateDriverUoW

func (f FuncCreateDriverUoWFactory) Create() commands.CreateDriverUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncAssignOrderUoWFactory func() commands.AssignOrderUoW

func (f FuncAssignOrderUoWFactory) Create() commands.AssignOrderUoW {
	return f()
}

type FuncTransitUoWFactory func() commands.TransitUoW

func (f FuncTransitUoWFactory) Create() commands.TransitUoW {
	return f()
}

type FuncRecordExceptionUoWFactory func() commands.RecordExceptionUoW

func (f FuncRecordExceptionUoWFactory) Create() commands.RecordExceptionUoW {
	return f()
}

type FuncResolveExceptionUoWFactory func() commands.ResolveExceptionUoW

func (f FuncResolveExceptionUoWFactory) Create() commands.ResolveExceptionUoW {
	return f()
}

type FuncDispatchPendingUoWFactory func() commands.DispatchPendingUoW

func (f FuncDispatchPendingUoWFactory) Create() commands.DispatchPendingUoW {
	return f()
}
