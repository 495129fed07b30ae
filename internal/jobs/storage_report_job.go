package jobs

import (
	"context"
	"log/slog"

	"laundromat/internal/adapters/metrics"
	"laundromat/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// hotRackThreshold is the used/total ratio above which a rack is reported
// as running hot.
const hotRackThreshold = 0.9

// StorageReportJob periodically surveys rack occupancy. It refreshes the
// Prometheus gauges and warns when racks run hot or allocations are held by
// cancelled, damaged, or lost orders that nobody cleaned up.
type StorageReportJob struct {
	handler queries.GetStorageOccupancyQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStorageReportJob creates a new job reporting storage occupancy.
// Uses GetStorageOccupancyQueryHandler to aggregate rack state every minute.
func NewStorageReportJob(handler queries.GetStorageOccupancyQueryHandler, logger *slog.Logger) *StorageReportJob {
	return &StorageReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "storage_report_job"),
	}
}

// Start begins the storage report job to run every minute.
func (j *StorageReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Storage report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Storage report job started (running every minute)")
	return nil
}

// Stop stops the storage report job.
func (j *StorageReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Storage report job stopped")
}

func (j *StorageReportJob) report(ctx context.Context) error {
	views, err := j.handler.Handle(ctx, queries.NewGetStorageOccupancyQuery())
	if err != nil {
		return err
	}

	for _, view := range views {
		metrics.SetRackOccupancy(
			view.RackNumber,
			view.TotalCapacity,
			view.UsedCapacity,
			view.ActiveAllocations,
			view.StaleAllocations,
		)

		if view.TotalCapacity > 0 &&
			float64(view.UsedCapacity) >= hotRackThreshold*float64(view.TotalCapacity) {
			j.logger.WarnContext(ctx, "Rack is running hot",
				"rack", view.RackNumber,
				"used", view.UsedCapacity,
				"total", view.TotalCapacity)
		}

		if view.StaleAllocations > 0 {
			j.logger.WarnContext(ctx, "Rack holds stale allocations",
				"rack", view.RackNumber,
				"staleAllocations", view.StaleAllocations)
		}
	}

	return nil
}
