// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the medicine shipping service.
//
// # Available Jobs
//
// 1. ShipmentDispatchJob - Runs every second to dispatch pending shipments to compatible transporters
// 2. ShipmentTransitJob - Runs every second to advance shipments toward their destinations and complete deliveries
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceShipmentsHandler, dispatchShipmentHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "* * * * * *" which means they run every second.
// This frequency ensures real-time responsiveness for shipment processing and transit.
//
// # Error Handling
//
// - Dispatch job ignores expected business errors (no shipments, no transporters)
// - Transit job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
