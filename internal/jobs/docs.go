// Package jobs provides scheduled background tasks for the laundromat service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order storage subsystem.
//
// # Available Jobs
//
// 1. StorageReportJob - Runs every minute to refresh rack occupancy metrics
// and warn about racks running hot or allocations gone stale
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(storageOccupancyHandler, logger)
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
// The report job uses the cron expression "0 * * * * *": once a minute is
// frequent enough for operator dashboards without loading the database.
//
// # Error Handling
//
// Report failures are logged and retried on the next tick; a missed report
// only delays metric freshness.
package jobs
