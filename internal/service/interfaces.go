package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"hn_harvester/internal/domain"
	"hn_harvester/internal/fetcher"
	"hn_harvester/internal/scraper"
)

// ThreadFetcher walks the new-items feed and reply trees.
type ThreadFetcher interface {
	Run(ctx context.Context, sel fetcher.Selection) (*fetcher.Result, error)
}

type StoryStore interface {
	Upsert(ctx context.Context, story *domain.Story) (int64, error)
	Exists(ctx context.Context, hnID int64) (bool, error)
}

type CommentStore interface {
	Upsert(ctx context.Context, comment *domain.Comment) (int64, error)
}

type ScrapeJobStore interface {
	// CreateIfAbsent inserts a pending job for url unless one already
	// exists. Returns whether a new job was created.
	CreateIfAbsent(ctx context.Context, url string) (bool, error)
	ListPending(ctx context.Context, limit int) ([]domain.ScrapeJob, error)
	// ListUnembedded returns successful jobs with content and no stored
	// embeddings yet.
	ListUnembedded(ctx context.Context, limit int) ([]domain.ScrapeJob, error)
	MarkSuccess(ctx context.Context, id int64, title, content string) error
	MarkFailed(ctx context.Context, id int64, errMsg string) error
}

type EmbeddingStore interface {
	Insert(ctx context.Context, emb *domain.ChunkEmbedding) (int64, error)
	CountByJob(ctx context.Context, jobID int64) (int, error)
}

type TaskRunStore interface {
	Start(ctx context.Context, taskType string) (int64, error)
	Finish(ctx context.Context, id int64, status domain.TaskStatus, errMsg string, result map[string]any) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, story *domain.Story, isNew bool) error
	Close() error
}

// ArticleScraper extracts title and body text behind one URL.
type ArticleScraper interface {
	Scrape(ctx context.Context, url string) (*scraper.Article, error)
}

type Chunker interface {
	Chunk(text string) ([]domain.Chunk, error)
}

type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
