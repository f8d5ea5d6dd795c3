// Package jobs provides scheduled background tasks for the job board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ReindexJob - Periodically rebuilds both search indexes from the primary
// store, repairing drift left by index writes that failed after their
// primary-store transaction committed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reindexHandler, jobs.DefaultReindexSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reindex job defaults to "0 * * * *" (hourly). The reindex is
// idempotent and safe to run concurrently with live traffic; each document
// is simply rewritten with the current primary-store state.
package jobs
