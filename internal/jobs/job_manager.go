package jobs

import (
	"fmt"
	"log/slog"

	"printshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockScanJob *LowStockScanJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getLowSpoolsHandler queries.GetLowSpoolsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockScanJob: NewLowStockScanJob(getLowSpoolsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockScanJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock scan job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockScanJob.Stop()
}
