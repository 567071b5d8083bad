package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hn_harvester/internal/domain"
)

type TaskRunStore struct {
	db *sqlx.DB
}

func NewTaskRunStore(db *sqlx.DB) *TaskRunStore {
	return &TaskRunStore{db: db}
}

func (s *TaskRunStore) Start(ctx context.Context, taskType string) (int64, error) {
	query := `
		INSERT INTO task_runs (task_type, status, started_at)
		VALUES ($1, $2, now())
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, taskType, domain.TaskRunning).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *TaskRunStore) Finish(ctx context.Context, id int64, status domain.TaskStatus, errMsg string, result map[string]any) error {
	var resultJSON any
	if result != nil {
		encoded, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		resultJSON = encoded
	}

	query := `
		UPDATE task_runs
		SET status = $2, error = $3, result = $4, finished_at = now()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		id,
		status,
		sql.NullString{String: errMsg, Valid: errMsg != ""},
		resultJSON,
	)
	return err
}
