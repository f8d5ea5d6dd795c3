package jobs

import (
	"context"
	"log/slog"

	"jobboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReindexJob rebuilds both search indexes from the primary store on a
// schedule. It repairs the drift left behind by index writes that failed
// after their primary-store transaction had already committed.
type ReindexJob struct {
	handler  commands.ReindexAllCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReindexJob creates a scheduled reindex job. The schedule is a standard
// five-field cron expression.
func NewReindexJob(handler commands.ReindexAllCommandHandler, schedule string, logger *slog.Logger) *ReindexJob {
	return &ReindexJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "reindex_job"),
	}
}

// Start begins the reindex job on its schedule.
func (j *ReindexJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		report, err := j.handler.Handle(ctx, commands.NewReindexAllCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Scheduled reindex failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Scheduled reindex finished",
			"jobseekers", report.Jobseekers,
			"vacancies", report.Vacancies,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reindex job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reindex job.
func (j *ReindexJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reindex job stopped")
}
