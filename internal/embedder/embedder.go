package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Config holds embedding model configuration. The service speaks the
// OpenAI-compatible embeddings API, so a local ollama or a hosted endpoint
// both work.
type Config struct {
	Host      string
	Model     string
	Dimension int
}

// Generator maps text to fixed-length dense vectors. The underlying model
// client is initialized lazily on first use and shared for the process
// lifetime; repeated and concurrent calls reuse the same instance.
type Generator struct {
	cfg    Config
	logger *slog.Logger

	once     sync.Once
	model    embeddings.Embedder
	initErr  error
	newModel func() (embeddings.Embedder, error)
}

func New(cfg Config, logger *slog.Logger) *Generator {
	g := &Generator{
		cfg:    cfg,
		logger: logger.With("component", "embedder"),
	}
	g.newModel = g.openAIModel
	return g
}

func (g *Generator) openAIModel() (embeddings.Embedder, error) {
	// Token "none" keeps local OpenAI-compatible servers happy.
	client, err := openai.New(
		openai.WithBaseURL(g.cfg.Host),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(g.cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create embedding client: %w", err)
	}
	return embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
}

func (g *Generator) init() error {
	g.once.Do(func() {
		g.model, g.initErr = g.newModel()
		if g.initErr == nil {
			g.logger.Info("embedding model initialized",
				"model", g.cfg.Model,
				"dimension", g.cfg.Dimension,
			)
		}
	})
	return g.initErr
}

// Dimension is the fixed vector length, constant for the process lifetime.
func (g *Generator) Dimension() int {
	return g.cfg.Dimension
}

// Embed returns the L2-normalized vector for a single text.
func (g *Generator) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := g.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch returns L2-normalized vectors for texts, in input order.
func (g *Generator) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := g.init(); err != nil {
		return nil, err
	}

	vectors, err := g.model.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed %d texts: %w", len(texts), err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: want %d, got %d", len(texts), len(vectors))
	}

	for i, v := range vectors {
		if len(v) != g.cfg.Dimension {
			return nil, fmt.Errorf("unexpected vector dimension: want %d, got %d", g.cfg.Dimension, len(v))
		}
		vectors[i] = Normalize(v)
	}

	return vectors, nil
}

// Normalize scales v to unit length. A zero vector is returned unchanged.
func Normalize(v []float32) []float32 {
	var sum float32
	for _, val := range v {
		sum += val * val
	}
	magnitude := float32(math.Sqrt(float64(sum)))
	if magnitude == 0 {
		return v
	}

	result := make([]float32, len(v))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}
