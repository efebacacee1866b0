package jobs

import (
	"fmt"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workQueueReportJob *WorkQueueReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workQueueReportJob: NewWorkQueueReportJob(getWorkOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workQueueReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start work queue report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.workQueueReportJob.Stop()
}
