package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hn_harvester/internal/domain"
)

type ScrapeJobStore struct {
	db *sqlx.DB
}

func NewScrapeJobStore(db *sqlx.DB) *ScrapeJobStore {
	return &ScrapeJobStore{db: db}
}

// CreateIfAbsent enqueues a pending job for the URL. The unique constraint
// on url makes duplicate submissions a no-op; the return value reports
// whether a new row was written.
func (s *ScrapeJobStore) CreateIfAbsent(ctx context.Context, url string) (bool, error) {
	query := `
		INSERT INTO scrape_jobs (url, status)
		VALUES ($1, $2)
		ON CONFLICT (url) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, url, domain.JobPending)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListPending returns pending jobs oldest first. A limit of 0 means no cap.
func (s *ScrapeJobStore) ListPending(ctx context.Context, limit int) ([]domain.ScrapeJob, error) {
	query := `
		SELECT id, url, status, title, content, error, created_at, attempted_at
		FROM scrape_jobs
		WHERE status = $1
		ORDER BY created_at
		LIMIT NULLIF($2, 0)`

	var jobs []domain.ScrapeJob
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &jobs, query, domain.JobPending, limit); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListUnembedded returns scraped jobs that have no chunk embeddings yet.
// A limit of 0 means no cap.
func (s *ScrapeJobStore) ListUnembedded(ctx context.Context, limit int) ([]domain.ScrapeJob, error) {
	query := `
		SELECT j.id, j.url, j.status, j.title, j.content, j.error, j.created_at, j.attempted_at
		FROM scrape_jobs j
		WHERE j.status = $1
		  AND NOT EXISTS (
			SELECT 1 FROM chunk_embeddings e WHERE e.job_id = j.id
		  )
		ORDER BY j.attempted_at
		LIMIT NULLIF($2, 0)`

	var jobs []domain.ScrapeJob
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &jobs, query, domain.JobSuccess, limit); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *ScrapeJobStore) MarkSuccess(ctx context.Context, id int64, title, content string) error {
	query := `
		UPDATE scrape_jobs
		SET status = $2, title = $3, content = $4, error = NULL, attempted_at = now()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, domain.JobSuccess, title, content)
	return err
}

func (s *ScrapeJobStore) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	query := `
		UPDATE scrape_jobs
		SET status = $2, error = $3, attempted_at = now()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, domain.JobFailed, errMsg)
	return err
}
