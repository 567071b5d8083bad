package domain

import "time"

// JobStatus is the lifecycle state of a scrape job.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobSuccess JobStatus = "success"
	JobFailed  JobStatus = "failed"
)

// ScrapeJob tracks the extraction of one external URL. There is exactly
// one job per distinct URL, no matter how many stories reference it.
type ScrapeJob struct {
	ID          int64      `db:"id"`
	URL         string     `db:"url"`
	Status      JobStatus  `db:"status"`
	Title       *string    `db:"title"`
	Content     *string    `db:"content"`
	Error       *string    `db:"error"`
	CreatedAt   time.Time  `db:"created_at"`
	AttemptedAt *time.Time `db:"attempted_at"`
}

// HasContent reports whether the job produced non-empty extracted text.
// A success status with empty content is treated as not embeddable.
func (j *ScrapeJob) HasContent() bool {
	return j.Content != nil && *j.Content != ""
}
