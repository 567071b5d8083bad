package domain

import "time"

// ItemError records a single failed item inside a batch run.
type ItemError struct {
	ID    int64  `json:"id"`
	URL   string `json:"url,omitempty"`
	Error string `json:"error"`
}

// FetchStats holds the result of one ingestion run.
type FetchStats struct {
	Selected  int
	Stories   int
	Comments  int
	Skipped   int
	Jobs      int
	Published int
	Errors    []ItemError
	Duration  time.Duration
}

// ScrapeStats holds the result of one extraction run.
type ScrapeStats struct {
	Succeeded int
	Failed    int
	Skipped   int
	Errors    []ItemError
	Duration  time.Duration
}

// EmbedStats holds the result of one embedding run.
type EmbedStats struct {
	Processed  int
	Embeddings int
	Skipped    int
	Errors     []ItemError
	Duration   time.Duration
}
