package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"hn_harvester/internal/domain"
	"hn_harvester/internal/scraper"
)

// ScrapeConfig controls one extraction pass.
type ScrapeConfig struct {
	// RequestDelay is the minimum gap between outbound page fetches.
	RequestDelay time.Duration
	// JobLimit caps how many pending jobs one pass picks up; 0 means all.
	JobLimit int
}

// ScrapeService drains pending scrape jobs strictly sequentially, spacing
// requests with a politeness delay, and writes terminal status back per job.
type ScrapeService struct {
	jobs    ScrapeJobStore
	scraper ArticleScraper
	tasks   TaskRunStore
	limiter *rate.Limiter
	cfg     ScrapeConfig
	logger  *slog.Logger
}

func NewScrapeService(
	jobs ScrapeJobStore,
	articleScraper ArticleScraper,
	tasks TaskRunStore,
	cfg ScrapeConfig,
	logger *slog.Logger,
) *ScrapeService {
	return &ScrapeService{
		jobs:    jobs,
		scraper: articleScraper,
		tasks:   tasks,
		limiter: rate.NewLimiter(rate.Every(cfg.RequestDelay), 1),
		cfg:     cfg,
		logger:  logger.With("service", "scrape"),
	}
}

// Scrape processes up to limit pending jobs. A limit of 0 falls back to the
// configured JobLimit; when that is also 0 the whole backlog is drained.
// One job's failure, including a storage write failure for that job, never
// halts the rest of the batch.
func (s *ScrapeService) Scrape(ctx context.Context, limit int) (*domain.ScrapeStats, error) {
	startTime := time.Now()
	if limit <= 0 {
		limit = s.cfg.JobLimit
	}

	taskID, err := s.tasks.Start(ctx, "scrape")
	if err != nil {
		return nil, fmt.Errorf("start task record: %w", err)
	}

	stats, err := s.run(ctx, limit)
	if stats != nil {
		stats.Duration = time.Since(startTime)
	}

	finishTask(ctx, s.tasks, taskID, err, scrapeResult(stats), s.logger)
	if err != nil {
		return stats, err
	}

	s.logger.Info("scrape completed",
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *ScrapeService) run(ctx context.Context, limit int) (*domain.ScrapeStats, error) {
	pending, err := s.jobs.ListPending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending jobs: %w", err)
	}

	s.logger.Info("processing pending jobs", "count", len(pending))

	stats := &domain.ScrapeStats{}
	for i := range pending {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		s.processJob(ctx, &pending[i], stats)
	}

	return stats, nil
}

func (s *ScrapeService) processJob(ctx context.Context, job *domain.ScrapeJob, stats *domain.ScrapeStats) {
	if err := s.limiter.Wait(ctx); err != nil {
		return
	}

	article, err := s.scraper.Scrape(ctx, job.URL)

	switch {
	case errors.Is(err, scraper.ErrRobotsDenied):
		stats.Skipped++
		s.failJob(ctx, job, err)
	case err != nil:
		stats.Failed++
		stats.Errors = append(stats.Errors, domain.ItemError{ID: job.ID, URL: job.URL, Error: err.Error()})
		s.failJob(ctx, job, err)
	case article.Content == "":
		stats.Failed++
		stats.Errors = append(stats.Errors, domain.ItemError{ID: job.ID, URL: job.URL, Error: scraper.ErrNoContent.Error()})
		s.failJob(ctx, job, scraper.ErrNoContent)
	default:
		if err := s.jobs.MarkSuccess(ctx, job.ID, article.Title, article.Content); err != nil {
			stats.Failed++
			stats.Errors = append(stats.Errors, domain.ItemError{ID: job.ID, URL: job.URL, Error: err.Error()})
			s.logger.Error("failed to store scrape result", "job_id", job.ID, "error", err)
			return
		}
		stats.Succeeded++
	}
}

func (s *ScrapeService) failJob(ctx context.Context, job *domain.ScrapeJob, cause error) {
	if err := s.jobs.MarkFailed(ctx, job.ID, cause.Error()); err != nil {
		s.logger.Error("failed to store job failure", "job_id", job.ID, "error", err)
	}
}

func scrapeResult(stats *domain.ScrapeStats) map[string]any {
	if stats == nil {
		return nil
	}
	return map[string]any{
		"succeeded": stats.Succeeded,
		"failed":    stats.Failed,
		"skipped":   stats.Skipped,
		"errors":    len(stats.Errors),
	}
}
