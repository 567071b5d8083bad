package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hn_harvester/internal/domain"
)

func countByGranularity(chunks []domain.Chunk) map[domain.Granularity]int {
	counts := make(map[domain.Granularity]int)
	for _, c := range chunks {
		counts[c.Granularity]++
	}
	return counts
}

func TestChunk_Empty(t *testing.T) {
	c := New(DefaultConfig())

	chunks, err := c.Chunk("")
	require.NoError(t, err)
	assert.Nil(t, chunks)

	chunks, err = c.Chunk("   \n\n ")
	require.NoError(t, err)
	assert.Nil(t, chunks)
}

func TestChunk_ShortText(t *testing.T) {
	c := New(DefaultConfig())
	text := "A single short sentence."

	chunks, err := c.Chunk(text)
	require.NoError(t, err)

	counts := countByGranularity(chunks)
	assert.Equal(t, 1, counts[domain.GranularityDocument])
	assert.Equal(t, 1, counts[domain.GranularityParagraph])
	assert.Equal(t, 1, counts[domain.GranularitySentence])

	assert.Equal(t, text, chunks[0].Content)
	assert.Equal(t, domain.GranularityDocument, chunks[0].Granularity)
}

func TestChunk_ExactlyOneDocumentChunk(t *testing.T) {
	c := New(DefaultConfig())

	long := strings.Repeat("Some sentence about things. ", 300)
	chunks, err := c.Chunk(long)
	require.NoError(t, err)

	counts := countByGranularity(chunks)
	assert.Equal(t, 1, counts[domain.GranularityDocument])
	assert.Equal(t, strings.TrimSpace(long), chunks[0].Content)
}

func TestChunk_LongTextProducesWindows(t *testing.T) {
	c := New(DefaultConfig())

	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("This paragraph talks about databases and indexes. It keeps going for a while to add bulk.\n\n")
	}

	chunks, err := c.Chunk(sb.String())
	require.NoError(t, err)

	counts := countByGranularity(chunks)
	assert.Equal(t, 1, counts[domain.GranularityDocument])
	assert.Greater(t, counts[domain.GranularityParagraph], 1)
	assert.GreaterOrEqual(t, counts[domain.GranularitySentence], counts[domain.GranularityParagraph])
}

func TestChunk_IndexAndTotalConsistent(t *testing.T) {
	c := New(DefaultConfig())

	text := strings.Repeat("Yet another sentence goes here. ", 120)
	chunks, err := c.Chunk(text)
	require.NoError(t, err)

	next := map[domain.Granularity]int{}
	counts := countByGranularity(chunks)
	for _, chunk := range chunks {
		assert.Equal(t, next[chunk.Granularity], chunk.Index, "indices are zero-based and contiguous per granularity")
		assert.Equal(t, counts[chunk.Granularity], chunk.Total)
		next[chunk.Granularity]++
	}
}

func TestChunk_ParagraphChunksCoverText(t *testing.T) {
	c := New(DefaultConfig())

	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliett", "kilo", "lima",
	}
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "%s%d ", words[i%len(words)], i)
	}
	text := strings.TrimSpace(sb.String())

	chunks, err := c.Chunk(text)
	require.NoError(t, err)

	// Every word of the input survives into at least one paragraph chunk.
	var joined strings.Builder
	for _, chunk := range chunks {
		if chunk.Granularity == domain.GranularityParagraph {
			joined.WriteString(chunk.Content)
			joined.WriteString(" ")
		}
	}
	all := joined.String()
	for _, w := range strings.Fields(text) {
		assert.Contains(t, all, w)
	}
}

func TestChunk_RespectsSizeBounds(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)

	text := strings.Repeat("A reasonably sized sentence for splitting purposes. ", 100)
	chunks, err := c.Chunk(text)
	require.NoError(t, err)

	for _, chunk := range chunks {
		switch chunk.Granularity {
		case domain.GranularityParagraph:
			assert.LessOrEqual(t, len(chunk.Content), cfg.ParagraphSize)
		case domain.GranularitySentence:
			assert.LessOrEqual(t, len(chunk.Content), cfg.SentenceSize)
		}
	}
}
