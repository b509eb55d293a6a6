package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createFleetHandler      commands.CreateFleetCommandHandler
	createVehicleHandler    commands.CreateVehicleCommandHandler
	createDriverHandler     commands.CreateDriverCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	assignOrderHandler      commands.AssignOrderCommandHandler
	startTransitHandler     commands.StartTransitCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	recordExceptionHandler  commands.RecordExceptionCommandHandler
	resolveExceptionHandler commands.ResolveExceptionCommandHandler

	// Query handlers
	listVehiclesHandler       queries.ListVehiclesQueryHandler
	listDriversHandler        queries.ListDriversQueryHandler
	listPendingOrdersHandler  queries.ListPendingOrdersQueryHandler
	fleetMonthlyReportHandler queries.FleetMonthlyReportQueryHandler
	driverPerformanceHandler  queries.DriverPerformanceQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createFleetHandler commands.CreateFleetCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordExceptionHandler commands.RecordExceptionCommandHandler,
	resolveExceptionHandler commands.ResolveExceptionCommandHandler,
	listVehiclesHandler queries.ListVehiclesQueryHandler,
	listDriversHandler queries.ListDriversQueryHandler,
	listPendingOrdersHandler queries.ListPendingOrdersQueryHandler,
	fleetMonthlyReportHandler queries.FleetMonthlyReportQueryHandler,
	driverPerformanceHandler queries.DriverPerformanceQueryHandler,
) *Server {
	return &Server{
		createFleetHandler:        createFleetHandler,
		createVehicleHandler:      createVehicleHandler,
		createDriverHandler:       createDriverHandler,
		createOrderHandler:        createOrderHandler,
		assignOrderHandler:        assignOrderHandler,
		startTransitHandler:       startTransitHandler,
		completeOrderHandler:      completeOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		recordExceptionHandler:    recordExceptionHandler,
		resolveExceptionHandler:   resolveExceptionHandler,
		listVehiclesHandler:       listVehiclesHandler,
		listDriversHandler:        listDriversHandler,
		listPendingOrdersHandler:  listPendingOrdersHandler,
		fleetMonthlyReportHandler: fleetMonthlyReportHandler,
		driverPerformanceHandler:  driverPerformanceHandler,
	}
}

// RegisterRoutes wires all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/fleets", s.CreateFleet)

	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.CreateVehicle)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)

	api.GET("/orders/pending", s.GetPendingOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/assign", s.AssignOrder)
	api.POST("/orders/:orderId/transit", s.StartTransit)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.POST("/exceptions", s.RecordException)
	api.POST("/exceptions/:recordId/resolve", s.ResolveException)

	api.GET("/reports/fleets/:fleetId/monthly", s.GetFleetMonthlyReport)
	api.GET("/reports/drivers/:driverId", s.GetDriverPerformance)
}

// CreateFleet handles POST /api/v1/fleets.
func (s *Server) CreateFleet(ctx echo.Context) error {
	var req NewFleet
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateFleetCommand(req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid fleet data: "+err.Error())
	}

	if handleErr := s.createFleetHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.FleetID().String()})
}

// GetVehicles handles GET /api/v1/vehicles with optional fleet_id and status filters.
func (s *Server) GetVehicles(ctx echo.Context) error {
	var fleetID *kernel.UUID
	if raw := ctx.QueryParam("fleet_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid fleet_id")
		}
		fleetID = &id
	}

	var status *vehicle.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := vehicle.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status")
		}
		status = &parsed
	}

	query, err := queries.NewListVehiclesQuery(fleetID, status)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	vehicles, err := s.listVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = Vehicle{
			PlateNumber: v.Plate.String(),
			FleetID:     v.FleetID.String(),
			FleetName:   v.FleetName,
			MaxWeight:   v.MaxWeight,
			MaxVolume:   v.MaxVolume,
			Status:      v.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req NewVehicle
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	plate, err := kernel.NewPlateNumber(req.PlateNumber)
	if err != nil {
		return badRequest(ctx, "Invalid plate number")
	}

	fleetID, err := kernel.UUIDFromString(req.FleetID)
	if err != nil {
		return badRequest(ctx, "Invalid fleet ID")
	}

	capacity, err := vehicle.NewCapacity(req.MaxWeight, req.MaxVolume)
	if err != nil {
		return badRequest(ctx, "Invalid capacity: "+err.Error())
	}

	cmd, err := commands.NewCreateVehicleCommand(plate, fleetID, capacity)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	if handleErr := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDrivers handles GET /api/v1/drivers with an optional fleet_id filter.
func (s *Server) GetDrivers(ctx echo.Context) error {
	var fleetID *kernel.UUID
	if raw := ctx.QueryParam("fleet_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid fleet_id")
		}
		fleetID = &id
	}

	query, err := queries.NewListDriversQuery(fleetID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	drivers, err := s.listDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{
			DriverID:     d.ID.String(),
			Name:         d.Name,
			LicenseLevel: d.LicenseLevel,
			Phone:        d.Phone,
			FleetID:      d.FleetID.String(),
			FleetName:    d.FleetName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req NewDriver
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.NewDriverID(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	fleetID, err := kernel.UUIDFromString(req.FleetID)
	if err != nil {
		return badRequest(ctx, "Invalid fleet ID")
	}

	cmd, err := commands.NewCreateDriverCommand(driverID, req.Name, req.LicenseLevel, req.Phone, fleetID)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewListPendingOrdersQuery()

	orders, err := s.listPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]PendingOrder, len(orders))
	for i, o := range orders {
		response[i] = PendingOrder{
			OrderID:     o.ID.String(),
			Destination: o.Destination,
			CargoWeight: o.CargoWeight,
			CargoVolume: o.CargoVolume,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cargo, err := kernel.NewCargo(req.CargoWeight, req.CargoVolume)
	if err != nil {
		return badRequest(ctx, "Invalid cargo: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, req.Destination, cargo)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignOrder handles POST /api/v1/orders/:orderId/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	plate, err := kernel.NewPlateNumber(req.PlateNumber)
	if err != nil {
		return badRequest(ctx, "Invalid plate number")
	}

	driverID, err := kernel.NewDriverID(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, plate, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartTransit handles POST /api/v1/orders/:orderId/transit.
func (s *Server) StartTransit(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewStartTransitCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.startTransitHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordException handles POST /api/v1/exceptions.
func (s *Server) RecordException(ctx echo.Context) error {
	var req NewException
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	plate, err := kernel.NewPlateNumber(req.PlateNumber)
	if err != nil {
		return badRequest(ctx, "Invalid plate number")
	}

	driverID, err := kernel.NewDriverID(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	cmd, err := commands.NewRecordExceptionCommand(plate, driverID, req.ExceptionType, req.SpecificEvent, req.Description)
	if err != nil {
		return badRequest(ctx, "Invalid exception data: "+err.Error())
	}

	if handleErr := s.recordExceptionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.RecordID().String()})
}

// ResolveException handles POST /api/v1/exceptions/:recordId/resolve.
func (s *Server) ResolveException(ctx echo.Context) error {
	recordID, err := kernel.UUIDFromString(ctx.Param("recordId"))
	if err != nil {
		return badRequest(ctx, "Invalid record ID")
	}

	cmd, err := commands.NewResolveExceptionCommand(recordID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.resolveExceptionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetFleetMonthlyReport handles GET /api/v1/reports/fleets/:fleetId/monthly.
func (s *Server) GetFleetMonthlyReport(ctx echo.Context) error {
	fleetID, err := kernel.UUIDFromString(ctx.Param("fleetId"))
	if err != nil {
		return badRequest(ctx, "Invalid fleet ID")
	}

	year, err := strconv.Atoi(ctx.QueryParam("year"))
	if err != nil {
		return badRequest(ctx, "Invalid year")
	}

	month, err := strconv.Atoi(ctx.QueryParam("month"))
	if err != nil {
		return badRequest(ctx, "Invalid month")
	}

	query, err := queries.NewFleetMonthlyReportQuery(fleetID, year, time.Month(month))
	if err != nil {
		return badRequest(ctx, "Invalid report period: "+err.Error())
	}

	rows, err := s.fleetMonthlyReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]FleetMonthlyReportRow, len(rows))
	for i, row := range rows {
		response[i] = FleetMonthlyReportRow{
			PlateNumber:     row.Plate.String(),
			OrdersCompleted: row.OrdersCompleted,
			TotalWeight:     row.TotalWeight,
			TotalVolume:     row.TotalVolume,
			ExceptionCount:  row.ExceptionCount,
			Utilization:     row.Utilization,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverPerformance handles GET /api/v1/reports/drivers/:driverId with
// optional start_date and end_date bounds (RFC 3339).
func (s *Server) GetDriverPerformance(ctx echo.Context) error {
	driverID, err := kernel.NewDriverID(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	var startDate *time.Time
	if raw := ctx.QueryParam("start_date"); raw != "" {
		parsed, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid start_date")
		}
		startDate = &parsed
	}

	var endDate *time.Time
	if raw := ctx.QueryParam("end_date"); raw != "" {
		parsed, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid end_date")
		}
		endDate = &parsed
	}

	query, err := queries.NewDriverPerformanceQuery(driverID, startDate, endDate)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	report, err := s.driverPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	exceptions := make([]DriverException, len(report.Exceptions))
	for i, ex := range report.Exceptions {
		exceptions[i] = DriverException{
			RecordID:      ex.ID.String(),
			PlateNumber:   ex.VehiclePlate.String(),
			ExceptionType: ex.ExceptionType,
			SpecificEvent: ex.SpecificEvent,
			Description:   ex.Description,
			HandleStatus:  ex.HandleStatus.String(),
			OccurredAt:    ex.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, DriverPerformance{
		DriverID:           report.DriverID.String(),
		OrdersAssigned:     report.Summary.OrdersAssigned,
		OrdersCompleted:    report.Summary.OrdersCompleted,
		TotalWeight:        report.Summary.TotalWeight,
		TotalVolume:        report.Summary.TotalVolume,
		AvgDeliverySeconds: report.Summary.AvgDeliverySeconds,
		Exceptions:         exceptions,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors onto HTTP status codes. Missing
// aggregates surface as 404, business rule violations as 409, everything
// else as 500.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case isConflict(err):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func isConflict(err error) bool {
	conflicts := []error{
		errs.ErrStateConflict,
		commands.ErrDuplicatePlate,
		commands.ErrDuplicateDriverID,
		commands.ErrDuplicateOrderID,
		commands.ErrExceptionAlreadyResolved,
		services.ErrOrderNotAssignable,
		services.ErrVehicleUnavailable,
		services.ErrDriverFleetMismatch,
		services.ErrOverloadRejected,
	}

	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return true
		}
	}

	return false
}
