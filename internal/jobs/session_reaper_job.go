package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// IdleSessionReaper discards sessions that have been inactive longer than
// the given age and reports how many were removed. Implemented by the
// in-memory session registry.
type IdleSessionReaper interface {
	ReapIdle(maxIdle time.Duration) int
}

// SessionReaperJob manages the scheduled cleanup of abandoned sessions.
// Runs every minute so an interrupted conversation does not pin its draft
// in memory forever.
type SessionReaperJob struct {
	reaper  IdleSessionReaper
	maxIdle time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionReaperJob creates a new job for reaping idle sessions.
// Sessions idle longer than maxIdle are discarded on each run.
func NewSessionReaperJob(reaper IdleSessionReaper, maxIdle time.Duration, logger *slog.Logger) *SessionReaperJob {
	return &SessionReaperJob{
		reaper:  reaper,
		maxIdle: maxIdle,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "session_reaper_job"),
	}
}

// Start begins the session reaper job to run every minute.
func (j *SessionReaperJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if reaped := j.reaper.ReapIdle(j.maxIdle); reaped > 0 {
			j.logger.InfoContext(ctx, "Reaped idle sessions",
				"count", reaped, "max_idle", j.maxIdle)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session reaper job started (running every minute)")
	return nil
}

// Stop stops the session reaper job.
func (j *SessionReaperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session reaper job stopped")
}
