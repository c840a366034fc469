// Package scheduler runs the periodic purge of deactivated users.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Purger hard-deletes users deactivated before the cutoff.
type Purger interface {
	PurgeInactiveUsers(cutoff time.Time) (int64, error)
}

// Scheduler owns the cron instance for background maintenance jobs.
type Scheduler struct {
	cron      *cron.Cron
	purger    Purger
	retention time.Duration
	log       *logrus.Logger
}

// New creates a scheduler that purges users deactivated longer than
// retentionDays ago.
func New(purger Purger, retentionDays int, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		purger:    purger,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		log:       log,
	}
}

// Start registers the nightly purge job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 3 * * *", s.runPurge); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Purge scheduler started, retention %s", s.retention)
	return nil
}

// Stop halts the cron loop; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runPurge() {
	cutoff := time.Now().UTC().Add(-s.retention)
	purged, err := s.purger.PurgeInactiveUsers(cutoff)
	if err != nil {
		s.log.Errorf("Failed to purge inactive users: %v", err)
		return
	}
	if purged > 0 {
		s.log.Infof("Purged %d inactive users", purged)
	}
}
