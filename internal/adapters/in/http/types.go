package http

import "time"

// Request bodies.

type NewFleet struct {
	Name string `json:"name"`
}

type NewVehicle struct {
	PlateNumber string `json:"plateNumber"`
	FleetID     string `json:"fleetId"`
	MaxWeight   int    `json:"maxWeight"`
	MaxVolume   int    `json:"maxVolume"`
}

type NewDriver struct {
	DriverID     string `json:"driverId"`
	Name         string `json:"name"`
	LicenseLevel int    `json:"licenseLevel"`
	Phone        string `json:"phone"`
	FleetID      string `json:"fleetId"`
}

type NewOrder struct {
	OrderID     string `json:"orderId"`
	Destination string `json:"destination"`
	CargoWeight int    `json:"cargoWeight"`
	CargoVolume int    `json:"cargoVolume"`
}

type AssignOrderRequest struct {
	PlateNumber string `json:"plateNumber"`
	DriverID    string `json:"driverId"`
}

type NewException struct {
	PlateNumber   string `json:"plateNumber"`
	DriverID      string `json:"driverId"`
	ExceptionType string `json:"exceptionType"`
	SpecificEvent string `json:"specificEvent"`
	Description   string `json:"description"`
}

// Response bodies.

type Created struct {
	ID string `json:"id"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Vehicle struct {
	PlateNumber string `json:"plateNumber"`
	FleetID     string `json:"fleetId"`
	FleetName   string `json:"fleetName"`
	MaxWeight   int    `json:"maxWeight"`
	MaxVolume   int    `json:"maxVolume"`
	Status      string `json:"status"`
}

type Driver struct {
	DriverID     string `json:"driverId"`
	Name         string `json:"name"`
	LicenseLevel int    `json:"licenseLevel"`
	Phone        string `json:"phone"`
	FleetID      string `json:"fleetId"`
	FleetName    string `json:"fleetName"`
}

type PendingOrder struct {
	OrderID     string `json:"orderId"`
	Destination string `json:"destination"`
	CargoWeight int    `json:"cargoWeight"`
	CargoVolume int    `json:"cargoVolume"`
}

type FleetMonthlyReportRow struct {
	PlateNumber     string  `json:"plateNumber"`
	OrdersCompleted int     `json:"ordersCompleted"`
	TotalWeight     int     `json:"totalWeight"`
	TotalVolume     int     `json:"totalVolume"`
	ExceptionCount  int     `json:"exceptionCount"`
	Utilization     float64 `json:"utilization"`
}

type DriverException struct {
	RecordID      string    `json:"recordId"`
	PlateNumber   string    `json:"plateNumber"`
	ExceptionType string    `json:"exceptionType"`
	SpecificEvent string    `json:"specificEvent"`
	Description   string    `json:"description"`
	HandleStatus  string    `json:"handleStatus"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type DriverPerformance struct {
	DriverID           string            `json:"driverId"`
	OrdersAssigned     int               `json:"ordersAssigned"`
	OrdersCompleted    int               `json:"ordersCompleted"`
	TotalWeight        int               `json:"totalWeight"`
	TotalVolume        int               `json:"totalVolume"`
	AvgDeliverySeconds float64           `json:"avgDeliverySeconds"`
	Exceptions         []DriverException `json:"exceptions"`
}
