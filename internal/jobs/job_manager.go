package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueAssignmentJob *OverdueAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	overdueHandler queries.GetOverdueAssignmentsQueryHandler,
	overdueCronSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueAssignmentJob: NewOverdueAssignmentJob(overdueHandler, overdueCronSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueAssignmentJob.Stop()
}
