package domain

import "time"

// TaskStatus is the state of one pipeline invocation.
type TaskStatus string

const (
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// TaskRun records one pipeline stage invocation for observability.
// Historical records are never mutated; every invocation appends a new row
// which is then moved to a terminal status.
type TaskRun struct {
	ID         int64
	TaskType   string
	Status     TaskStatus
	StartedAt  time.Time
	FinishedAt *time.Time
	Error      *string
	Result     map[string]any
}
