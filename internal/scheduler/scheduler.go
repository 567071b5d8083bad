package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Pipeline defines one full ingestion cycle.
type Pipeline interface {
	RunCycle(ctx context.Context) error
}

type Scheduler struct {
	pipeline Pipeline
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(pipeline Pipeline, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pipeline: pipeline,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start runs one cycle immediately, then one per tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.pipeline.RunCycle(cycleCtx); err != nil {
		s.logger.Error("cycle failed", "error", err)
	}
}
