package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionReaperJob *SessionReaperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(reaper IdleSessionReaper, maxIdle time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		sessionReaperJob: NewSessionReaperJob(reaper, maxIdle, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start session reaper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionReaperJob.Stop()
}
