package jobs

import (
	"fmt"
	"log/slog"

	"jobboard/internal/core/application/usecases/commands"
)

// DefaultReindexSchedule runs the drift-repair reindex once an hour.
const DefaultReindexSchedule = "0 * * * *"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reindexJob *ReindexJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reindexHandler commands.ReindexAllCommandHandler,
	reindexSchedule string,
	logger *slog.Logger,
) *JobManager {
	if reindexSchedule == "" {
		reindexSchedule = DefaultReindexSchedule
	}

	return &JobManager{
		reindexJob: NewReindexJob(reindexHandler, reindexSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reindexJob.Start(); err != nil {
		return fmt.Errorf("failed to start reindex job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reindexJob.Stop()
}
