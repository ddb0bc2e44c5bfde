// Package matching computes semantic similarity between job descriptions and
// resumes via an injected text-embedding backend.
package matching

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder turns text into a fixed-length vector. The dimensionality is
// whatever the backing model produces; callers must not assume one.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// defaultEmbeddingModel is pinned so identical text embeds identically
// across runs.
const defaultEmbeddingModel = "text-embedding-004"

// GeminiEmbedder embeds text with the Gemini embedding API. Embeddings are
// cached per text for the lifetime of the embedder, so scoring the same job
// against many resumes embeds the job once.
type GeminiEmbedder struct {
	client *genai.Client
	model  string

	mu    sync.Mutex
	cache map[string][]float32
}

// NewGeminiEmbedder creates a GeminiEmbedder with the pinned default model.
func NewGeminiEmbedder(ctx context.Context, apiKey string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		model:  defaultEmbeddingModel,
		cache:  make(map[string][]float32),
	}, nil
}

// Embed returns the embedding vector for the text, serving repeats from the
// cache.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.mu.Lock()
	cached, ok := e.cache[text]
	e.mu.Unlock()
	if ok {
		return cached, nil
	}

	model := e.client.EmbeddingModel(e.model)
	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}

	e.mu.Lock()
	e.cache[text] = resp.Embedding.Values
	e.mu.Unlock()

	return resp.Embedding.Values, nil
}

// Close releases the underlying API client.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
