package jobs

import (
	"fmt"
	"log/slog"

	"medship/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentTransitJob  *ShipmentTransitJob
	shipmentDispatchJob *ShipmentDispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	advanceShipmentsHandler commands.AdvanceShipmentsCommandHandler,
	dispatchShipmentHandler commands.DispatchShipmentCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentTransitJob:  NewShipmentTransitJob(advanceShipmentsHandler, logger),
		shipmentDispatchJob: NewShipmentDispatchJob(dispatchShipmentHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment dispatch job: %w", err)
	}

	if err := jm.shipmentTransitJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.shipmentDispatchJob.Stop()
		return fmt.Errorf("failed to start shipment transit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentTransitJob.Stop()
	jm.shipmentDispatchJob.Stop()
}
