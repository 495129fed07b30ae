package jobs

import (
	"fmt"
	"log/slog"

	"laundromat/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	storageReportJob *StorageReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	storageOccupancyHandler queries.GetStorageOccupancyQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		storageReportJob: NewStorageReportJob(storageOccupancyHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.storageReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start storage report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.storageReportJob.Stop()
}
