package queries_test

import (
	"context"
	"time"

	"fleetdispatch/internal/adapters/out/postgres/driverrepo"
	"fleetdispatch/internal/adapters/out/postgres/exceptionrepo"
	"fleetdispatch/internal/adapters/out/postgres/fleetrepo"
	"fleetdispatch/internal/adapters/out/postgres/orderrepo"
	"fleetdispatch/internal/adapters/out/postgres/vehiclerepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// startQueryTestDB spins up a PostgreSQL container and migrates the full
// schema. The query handlers read across aggregates, so every table exists
// in each suite.
func startQueryTestDB(ctx context.Context, req *require.Assertions) (*postgres.PostgresContainer, *gorm.DB) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	req.NoError(err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	req.NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	req.NoError(err)

	req.NoError(db.AutoMigrate(
		&fleetrepo.FleetDTO{},
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&exceptionrepo.RecordDTO{},
	))

	return container, db
}

func truncateAll(req *require.Assertions, db *gorm.DB) {
	req.NoError(db.Exec("TRUNCATE TABLE fleets, vehicles, drivers, orders, exception_records").Error)
}

func seedFleet(req *require.Assertions, db *gorm.DB, name string) uuid.UUID {
	id := uuid.New()
	req.NoError(db.Create(&fleetrepo.FleetDTO{ID: id, Name: name}).Error)
	return id
}

func seedVehicle(req *require.Assertions, db *gorm.DB, plate string, fleetID uuid.UUID, maxWeight, maxVolume, status int) {
	req.NoError(db.Create(&vehiclerepo.VehicleDTO{
		PlateNumber: plate,
		FleetID:     fleetID,
		MaxWeight:   maxWeight,
		MaxVolume:   maxVolume,
		Status:      status,
	}).Error)
}

func seedDriver(req *require.Assertions, db *gorm.DB, driverID, name string, licenseLevel int, phone string, fleetID uuid.UUID) {
	req.NoError(db.Create(&driverrepo.DriverDTO{
		DriverID:     driverID,
		Name:         name,
		LicenseLevel: licenseLevel,
		Phone:        phone,
		FleetID:      fleetID,
	}).Error)
}

func seedOrder(req *require.Assertions, db *gorm.DB, dto orderrepo.OrderDTO) {
	req.NoError(db.Create(&dto).Error)
}

func seedException(req *require.Assertions, db *gorm.DB, dto exceptionrepo.RecordDTO) {
	if dto.ID == uuid.Nil {
		dto.ID = uuid.New()
	}
	req.NoError(db.Create(&dto).Error)
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
