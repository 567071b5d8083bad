package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hn_harvester/internal/domain"
)

// EmbedConfig controls one embedding pass.
type EmbedConfig struct {
	// JobLimit caps how many articles one pass embeds; 0 means all.
	JobLimit int
}

// EmbedService turns successfully extracted articles into chunk embeddings.
// An article that already has any stored embedding is never reprocessed.
type EmbedService struct {
	jobs       ScrapeJobStore
	embeddings EmbeddingStore
	chunker    Chunker
	embedder   Embedder
	tasks      TaskRunStore
	txManager  TransactionManager
	cfg        EmbedConfig
	logger     *slog.Logger
}

func NewEmbedService(
	jobs ScrapeJobStore,
	embeddings EmbeddingStore,
	chunker Chunker,
	embedder Embedder,
	tasks TaskRunStore,
	txManager TransactionManager,
	cfg EmbedConfig,
	logger *slog.Logger,
) *EmbedService {
	return &EmbedService{
		jobs:       jobs,
		embeddings: embeddings,
		chunker:    chunker,
		embedder:   embedder,
		tasks:      tasks,
		txManager:  txManager,
		cfg:        cfg,
		logger:     logger.With("service", "embed"),
	}
}

// Embed processes up to limit embeddable articles. A limit of 0 falls back
// to the configured JobLimit; when that is also 0 every article is eligible.
// A single article's failure is counted and the batch moves on.
func (s *EmbedService) Embed(ctx context.Context, limit int) (*domain.EmbedStats, error) {
	startTime := time.Now()
	if limit <= 0 {
		limit = s.cfg.JobLimit
	}

	taskID, err := s.tasks.Start(ctx, "embed")
	if err != nil {
		return nil, fmt.Errorf("start task record: %w", err)
	}

	stats, err := s.run(ctx, limit)
	if stats != nil {
		stats.Duration = time.Since(startTime)
	}

	finishTask(ctx, s.tasks, taskID, err, embedResult(stats), s.logger)
	if err != nil {
		return stats, err
	}

	s.logger.Info("embed completed",
		"processed", stats.Processed,
		"embeddings", stats.Embeddings,
		"skipped", stats.Skipped,
		"errors", len(stats.Errors),
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *EmbedService) run(ctx context.Context, limit int) (*domain.EmbedStats, error) {
	jobs, err := s.jobs.ListUnembedded(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list embeddable jobs: %w", err)
	}

	s.logger.Info("embedding articles", "count", len(jobs))

	stats := &domain.EmbedStats{}
	for i := range jobs {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		job := &jobs[i]
		created, err := s.processArticle(ctx, job)
		if err != nil {
			stats.Errors = append(stats.Errors, domain.ItemError{ID: job.ID, URL: job.URL, Error: err.Error()})
			continue
		}
		if created == 0 {
			stats.Skipped++
			continue
		}
		stats.Processed++
		stats.Embeddings += created
	}

	return stats, nil
}

// processArticle chunks and embeds one article. The presence of any stored
// embedding short-circuits the whole article: chunking and inference are the
// expensive stages and must not repeat on re-runs. All chunk rows for the
// article are written in one transaction, so a crash cannot leave the
// article half-embedded.
func (s *EmbedService) processArticle(ctx context.Context, job *domain.ScrapeJob) (int, error) {
	count, err := s.embeddings.CountByJob(ctx, job.ID)
	if err != nil {
		return 0, fmt.Errorf("count embeddings: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	if !job.HasContent() {
		return 0, nil
	}

	chunks, err := s.chunker.Chunk(*job.Content)
	if err != nil {
		return 0, fmt.Errorf("chunk article: %w", err)
	}
	if len(chunks) == 0 {
		return 0, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i, chunk := range chunks {
			emb := &domain.ChunkEmbedding{
				JobID:       job.ID,
				Content:     chunk.Content,
				Granularity: chunk.Granularity,
				ChunkIndex:  chunk.Index,
				ChunkTotal:  chunk.Total,
				Vector:      vectors[i],
				Metadata:    chunkMetadata(job),
			}
			if _, err := s.embeddings.Insert(txCtx, emb); err != nil {
				return fmt.Errorf("insert embedding %d/%d: %w", i+1, len(chunks), err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(chunks), nil
}

func chunkMetadata(job *domain.ScrapeJob) map[string]any {
	meta := map[string]any{"url": job.URL}
	if job.Title != nil {
		meta["title"] = *job.Title
	}
	return meta
}

func embedResult(stats *domain.EmbedStats) map[string]any {
	if stats == nil {
		return nil
	}
	return map[string]any{
		"processed":  stats.Processed,
		"embeddings": stats.Embeddings,
		"skipped":    stats.Skipped,
		"errors":     len(stats.Errors),
	}
}
