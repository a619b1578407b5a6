package jobs

import (
	"context"
	"errors"
	"log/slog"

	"medship/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShipmentDispatchJob manages the scheduled dispatch of shipments to transporters.
// Runs every second to match pending shipments with compatible transporters.
type ShipmentDispatchJob struct {
	handler commands.DispatchShipmentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentDispatchJob creates a new job for dispatching shipments.
// Uses DispatchShipmentCommandHandler to process shipment dispatch every second.
func NewShipmentDispatchJob(handler commands.DispatchShipmentCommandHandler, logger *slog.Logger) *ShipmentDispatchJob {
	return &ShipmentDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_dispatch_job"),
	}
}

// Start begins the shipment dispatch job to run every second.
func (j *ShipmentDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchShipmentCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoShipmentFound) && !errors.Is(err, commands.ErrNoAvailableTransportersFound) {
				j.logger.ErrorContext(ctx, "Shipment dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment dispatch job started (running every second)")
	return nil
}

// Stop stops the shipment dispatch job.
func (j *ShipmentDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment dispatch job stopped")
}
