package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hn_harvester/internal/domain"
	"hn_harvester/internal/fetcher"
)

// FetchService runs one ingestion pass: traverse the feed, persist stories
// and comments idempotently, and enqueue scrape jobs for external URLs.
type FetchService struct {
	fetcher   ThreadFetcher
	stories   StoryStore
	comments  CommentStore
	jobs      ScrapeJobStore
	tasks     TaskRunStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

func NewFetchService(
	threadFetcher ThreadFetcher,
	stories StoryStore,
	comments CommentStore,
	jobs ScrapeJobStore,
	tasks TaskRunStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *FetchService {
	return &FetchService{
		fetcher:   threadFetcher,
		stories:   stories,
		comments:  comments,
		jobs:      jobs,
		tasks:     tasks,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("service", "fetch"),
	}
}

// Fetch ingests everything matched by sel. Individual item failures are
// absorbed into the stats; only storage-level failures abort the run.
func (s *FetchService) Fetch(ctx context.Context, sel fetcher.Selection) (*domain.FetchStats, error) {
	startTime := time.Now()
	s.logger.Info("starting fetch", "window", sel.Window, "limit", sel.Limit)

	taskID, err := s.tasks.Start(ctx, "fetch")
	if err != nil {
		return nil, fmt.Errorf("start task record: %w", err)
	}

	stats, err := s.run(ctx, sel)
	if stats != nil {
		stats.Duration = time.Since(startTime)
	}

	finishTask(ctx, s.tasks, taskID, err, fetchResult(stats), s.logger)
	if err != nil {
		return stats, err
	}

	s.logger.Info("fetch completed",
		"selected", stats.Selected,
		"stories", stats.Stories,
		"comments", stats.Comments,
		"skipped", stats.Skipped,
		"jobs", stats.Jobs,
		"published", stats.Published,
		"errors", len(stats.Errors),
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *FetchService) run(ctx context.Context, sel fetcher.Selection) (*domain.FetchStats, error) {
	result, err := s.fetcher.Run(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("traverse feed: %w", err)
	}

	stats := &domain.FetchStats{
		Selected: result.Selected,
		Skipped:  result.Skipped,
		Errors:   result.Errors,
	}

	for i := range result.Stories {
		story := &result.Stories[i]

		created, err := s.saveStory(ctx, story)
		if err != nil {
			stats.Errors = append(stats.Errors, domain.ItemError{ID: story.HNID, Error: err.Error()})
			continue
		}
		stats.Stories++
		if created {
			stats.Jobs++
		}

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, story, true); err != nil {
				s.logger.Warn("publish failed", "hn_id", story.HNID, "error", err)
			} else {
				stats.Published++
			}
		}
	}

	for i := range result.Comments {
		comment := &result.Comments[i]
		if _, err := s.comments.Upsert(ctx, comment); err != nil {
			stats.Errors = append(stats.Errors, domain.ItemError{ID: comment.HNID, Error: err.Error()})
			continue
		}
		stats.Comments++
	}

	return stats, nil
}

// saveStory upserts the story and, when it links out, enqueues a scrape job
// for the URL unless one exists already. Both writes share a transaction.
func (s *FetchService) saveStory(ctx context.Context, story *domain.Story) (jobCreated bool, err error) {
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.stories.Upsert(txCtx, story); err != nil {
			return fmt.Errorf("upsert story: %w", err)
		}

		if story.HasURL() {
			created, err := s.jobs.CreateIfAbsent(txCtx, *story.URL)
			if err != nil {
				return fmt.Errorf("enqueue scrape job: %w", err)
			}
			jobCreated = created
		}

		return nil
	})
	return jobCreated, err
}

func fetchResult(stats *domain.FetchStats) map[string]any {
	if stats == nil {
		return nil
	}
	return map[string]any{
		"selected":  stats.Selected,
		"stories":   stats.Stories,
		"comments":  stats.Comments,
		"skipped":   stats.Skipped,
		"jobs":      stats.Jobs,
		"published": stats.Published,
		"errors":    len(stats.Errors),
	}
}
