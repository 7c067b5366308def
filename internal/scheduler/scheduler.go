package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one schedulable unit of work
type Job func(ctx context.Context) error

// Scheduler re-runs the analytics pipeline on a cron schedule, for
// setups where the export file is refreshed periodically
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	job    Job
	logger zerolog.Logger
}

// New creates a scheduler for the given cron spec
func New(spec string, job Job, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		spec:   spec,
		job:    job,
		logger: logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers the job and runs the cron loop until the context is
// cancelled
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.logger.Info().Msg("Scheduled run starting")
		if err := s.job(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Scheduled run failed")
			return
		}
		s.logger.Info().Msg("Scheduled run completed")
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info().Str("spec", s.spec).Msg("Scheduler started")

	<-ctx.Done()
	s.Stop()
	return ctx.Err()
}

// Stop stops scheduling new runs and waits for an in-flight run to
// finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("Scheduler stopped")
}
