package domain

import "time"

// Granularity is the level at which article text was chunked.
type Granularity string

const (
	GranularityDocument  Granularity = "document"
	GranularityParagraph Granularity = "paragraph"
	GranularitySentence  Granularity = "sentence"
)

// Chunk is one piece of article text at a given granularity.
// Index is zero-based within the granularity; Total is the number of
// chunks produced at that granularity for the same article.
type Chunk struct {
	Content     string
	Granularity Granularity
	Index       int
	Total       int
}

// ChunkEmbedding is a persisted vector for one chunk of an article.
type ChunkEmbedding struct {
	ID          int64
	JobID       int64
	Content     string
	Granularity Granularity
	ChunkIndex  int
	ChunkTotal  int
	Vector      []float32
	Metadata    map[string]any
	CreatedAt   time.Time
}
