package jobs

import (
	"context"
	"log/slog"

	"medship/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShipmentTransitJob manages the scheduled progress of dispatched shipments.
// Runs every second to advance shipments toward their destinations and
// complete deliveries.
type ShipmentTransitJob struct {
	handler commands.AdvanceShipmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentTransitJob creates a new job for advancing shipments.
// Uses AdvanceShipmentsCommandHandler to process shipment transit every second.
func NewShipmentTransitJob(handler commands.AdvanceShipmentsCommandHandler, logger *slog.Logger) *ShipmentTransitJob {
	return &ShipmentTransitJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_transit_job"),
	}
}

// Start begins the shipment transit job to run every second.
func (j *ShipmentTransitJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceShipmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipment transit job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment transit job started (running every second)")
	return nil
}

// Stop stops the shipment transit job.
func (j *ShipmentTransitJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment transit job stopped")
}
