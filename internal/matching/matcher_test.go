package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

// fakeEmbedder maps known texts to fixed vectors.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vec, ok := f.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vec, nil
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0.0},
		{"empty", nil, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_PercentageScale(t *testing.T) {
	assert.InDelta(t, 100.0, Similarity([]float32{1, 1}, []float32{1, 1}), 1e-9)
	assert.InDelta(t, 0.0, Similarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
}

func TestMatch_OrderPreservingAndTagged(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"job":      {1, 0},
		"resume a": {1, 0},
		"resume b": {0, 1},
		"resume c": {1, 1},
	}}
	m := NewMatcher(embedder, 2)

	resumes := []types.Resume{
		{Name: "a.pdf", Text: "resume a"},
		{Name: "b.pdf", Text: "resume b"},
		{Name: "c.pdf", Text: "resume c"},
	}

	results, err := m.Match(context.Background(), "job", resumes)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Input order preserved regardless of which goroutine finished first
	assert.Equal(t, "a.pdf", results[0].Name)
	assert.Equal(t, "b.pdf", results[1].Name)
	assert.Equal(t, "c.pdf", results[2].Name)

	// Text re-supplied for the ranker
	assert.Equal(t, "resume b", results[1].Text)

	require.NotNil(t, results[0].Similarity)
	assert.InDelta(t, 100.0, *results[0].Similarity, 1e-9)
	assert.InDelta(t, 0.0, *results[1].Similarity, 1e-9)
	assert.InDelta(t, 70.71, *results[2].Similarity, 0.01)
}

func TestMatch_EmbeddingFailureIsFatal(t *testing.T) {
	embedder := &fakeEmbedder{err: fmt.Errorf("backend down")}
	m := NewMatcher(embedder, 0)

	_, err := m.Match(context.Background(), "job", []types.Resume{{Name: "a", Text: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job description")
}

func TestMatch_EmptyResumes(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{"job": {1}}}
	m := NewMatcher(embedder, 0)

	results, err := m.Match(context.Background(), "job", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
