package chunker

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"hn_harvester/internal/domain"
)

// Separator preference orders. Each tier is tried before falling back to the
// next, so splits land on natural boundaries whenever the text allows it.
var (
	paragraphSeparators = []string{"\n\n", "\n", ". ", " ", ""}
	sentenceSeparators  = []string{". ", "! ", "? ", "; ", ", ", " ", ""}
)

// Config controls chunk sizes and overlaps, in characters.
type Config struct {
	ParagraphSize    int
	ParagraphOverlap int
	SentenceSize     int
	SentenceOverlap  int
}

func DefaultConfig() Config {
	return Config{
		ParagraphSize:    1000,
		ParagraphOverlap: 200,
		SentenceSize:     200,
		SentenceOverlap:  50,
	}
}

// Chunker splits article text into three granularities: one whole-document
// chunk, paragraph-sized windows and sentence-sized windows, both with
// overlap between consecutive chunks.
type Chunker struct {
	paragraph textsplitter.RecursiveCharacter
	sentence  textsplitter.RecursiveCharacter
}

func New(cfg Config) *Chunker {
	return &Chunker{
		paragraph: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(cfg.ParagraphSize),
			textsplitter.WithChunkOverlap(cfg.ParagraphOverlap),
			textsplitter.WithSeparators(paragraphSeparators),
		),
		sentence: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(cfg.SentenceSize),
			textsplitter.WithChunkOverlap(cfg.SentenceOverlap),
			textsplitter.WithSeparators(sentenceSeparators),
		),
	}
}

// Chunk is a pure function from text to an ordered chunk list. Empty input
// yields no chunks. Index and Total are fixed per granularity and written
// alongside the vector later; they never change after chunking.
func (c *Chunker) Chunk(text string) ([]domain.Chunk, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	chunks := []domain.Chunk{{
		Content:     text,
		Granularity: domain.GranularityDocument,
		Index:       0,
		Total:       1,
	}}

	paragraphs, err := c.paragraph.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split paragraphs: %w", err)
	}
	chunks = appendGranularity(chunks, paragraphs, domain.GranularityParagraph)

	sentences, err := c.sentence.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split sentences: %w", err)
	}
	chunks = appendGranularity(chunks, sentences, domain.GranularitySentence)

	return chunks, nil
}

func appendGranularity(chunks []domain.Chunk, parts []string, g domain.Granularity) []domain.Chunk {
	for i, part := range parts {
		chunks = append(chunks, domain.Chunk{
			Content:     part,
			Granularity: g,
			Index:       i,
			Total:       len(parts),
		})
	}
	return chunks
}
