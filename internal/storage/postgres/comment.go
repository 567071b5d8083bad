package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hn_harvester/internal/domain"
)

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) Upsert(ctx context.Context, comment *domain.Comment) (int64, error) {
	query := `
		INSERT INTO comments (
			hn_id, parent_hn_id, story_hn_id, body, author,
			posted_at, deleted, dead
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (hn_id) DO UPDATE SET
			body = EXCLUDED.body,
			author = EXCLUDED.author,
			deleted = EXCLUDED.deleted,
			dead = EXCLUDED.dead,
			updated_at = now()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		comment.HNID,
		comment.ParentHNID,
		comment.StoryHNID,
		comment.Body,
		comment.Author,
		comment.PostedAt,
		comment.Deleted,
		comment.Dead,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
