package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"hn_harvester/internal/domain"
)

type EmbeddingStore struct {
	db *sqlx.DB
}

func NewEmbeddingStore(db *sqlx.DB) *EmbeddingStore {
	return &EmbeddingStore{db: db}
}

func (s *EmbeddingStore) Insert(ctx context.Context, emb *domain.ChunkEmbedding) (int64, error) {
	metadata, err := json.Marshal(emb.Metadata)
	if err != nil {
		return 0, fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		INSERT INTO chunk_embeddings (
			job_id, content, granularity, chunk_index, chunk_total, vector, metadata
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING id`

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		emb.JobID,
		emb.Content,
		emb.Granularity,
		emb.ChunkIndex,
		emb.ChunkTotal,
		pq.Float32Array(emb.Vector),
		metadata,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *EmbeddingStore) CountByJob(ctx context.Context, jobID int64) (int, error) {
	var count int
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		"SELECT count(*) FROM chunk_embeddings WHERE job_id = $1", jobID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
