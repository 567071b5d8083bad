package domain

import "time"

// Story is a top-level forum submission (a link post or a self-text post).
type Story struct {
	ID          int64
	HNID        int64
	Title       string
	URL         *string
	Body        *string
	Author      *string
	Score       int
	Descendants int
	PostedAt    time.Time
	Deleted     bool
	Dead        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasURL reports whether the story links to an external page.
// Self-text posts have no URL and never produce a scrape job.
func (s *Story) HasURL() bool {
	return s.URL != nil && *s.URL != ""
}

// Comment is a threaded reply to a story or to another comment.
// ParentHNID points at either the story or an intermediate comment;
// StoryHNID is always the root of the thread.
type Comment struct {
	ID         int64
	HNID       int64
	ParentHNID int64
	StoryHNID  int64
	Body       *string
	Author     *string
	PostedAt   time.Time
	Deleted    bool
	Dead       bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
