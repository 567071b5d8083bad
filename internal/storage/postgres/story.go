package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hn_harvester/internal/domain"
)

type StoryStore struct {
	db *sqlx.DB
}

func NewStoryStore(db *sqlx.DB) *StoryStore {
	return &StoryStore{db: db}
}

func (s *StoryStore) Upsert(ctx context.Context, story *domain.Story) (int64, error) {
	query := `
		INSERT INTO stories (
			hn_id, title, url, body, author, score, descendants,
			posted_at, deleted, dead
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (hn_id) DO UPDATE SET
			title = EXCLUDED.title,
			url = EXCLUDED.url,
			body = EXCLUDED.body,
			author = EXCLUDED.author,
			score = EXCLUDED.score,
			descendants = EXCLUDED.descendants,
			deleted = EXCLUDED.deleted,
			dead = EXCLUDED.dead,
			updated_at = now()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		story.HNID,
		story.Title,
		story.URL,
		story.Body,
		story.Author,
		story.Score,
		story.Descendants,
		story.PostedAt,
		story.Deleted,
		story.Dead,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *StoryStore) Exists(ctx context.Context, hnID int64) (bool, error) {
	var exists bool
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM stories WHERE hn_id = $1)", hnID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
