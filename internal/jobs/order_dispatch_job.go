package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fleetdispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob manages the scheduled dispatch of pending orders.
// Runs every second to match the oldest waiting order with an idle vehicle
// and a free driver.
type OrderDispatchJob struct {
	handler commands.DispatchPendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDispatchJob creates a new job for dispatching pending orders.
// Uses DispatchPendingCommandHandler to run one dispatch round every second.
func NewOrderDispatchJob(handler commands.DispatchPendingCommandHandler, logger *slog.Logger) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrder) &&
				!errors.Is(err, commands.ErrNoVehicleAvailable) &&
				!errors.Is(err, commands.ErrNoDriverAvailable) {
				j.logger.ErrorContext(ctx, "Order dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
