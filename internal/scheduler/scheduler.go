// Package scheduler runs periodic background jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// SnapshotRefresher recomputes a cached report.
type SnapshotRefresher interface {
	RefreshSnapshot(ctx context.Context) error
}

// Scheduler manages the cron jobs of the service.
type Scheduler struct {
	cron      *cron.Cron
	refresher SnapshotRefresher
	ctx       context.Context
}

// New creates a Scheduler. Standard five-field expressions and descriptors
// such as "@every 5m" are accepted.
func New(ctx context.Context, refresher SnapshotRefresher) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		ctx:       ctx,
	}
}

// Register adds the snapshot refresh job on the given schedule.
func (s *Scheduler) Register(snapshotCron string) error {
	if _, err := s.cron.AddFunc(snapshotCron, s.refreshSnapshot); err != nil {
		return fmt.Errorf("register snapshot refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunNow refreshes the snapshot immediately, used to warm the cache at startup.
func (s *Scheduler) RunNow() {
	s.refreshSnapshot()
}

func (s *Scheduler) refreshSnapshot() {
	if err := s.refresher.RefreshSnapshot(s.ctx); err != nil {
		log.Error().Err(err).Msg("snapshot refresh failed")
	}
}
