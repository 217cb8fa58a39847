// Package jobs provides scheduled background tasks for the order intake
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionReaperJob - Runs every minute to discard sessions whose
// conversation went silent without a commit or an explicit close.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(registry, idleTimeout, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reaping cannot fail at the business level; a nonzero reap count is logged
// at info level so operators can see abandoned-conversation volume.
package jobs
