package service

import (
	"context"
	"log/slog"

	"hn_harvester/internal/domain"
)

// finishTask moves a task record to its terminal status. Task bookkeeping
// must never fail the pipeline run it describes, so errors are only logged.
func finishTask(ctx context.Context, tasks TaskRunStore, id int64, runErr error, result map[string]any, logger *slog.Logger) {
	status := domain.TaskCompleted
	errMsg := ""
	if runErr != nil {
		status = domain.TaskFailed
		errMsg = runErr.Error()
	}
	if err := tasks.Finish(ctx, id, status, errMsg, result); err != nil {
		logger.Error("failed to finish task record", "task_id", id, "error", err)
	}
}
