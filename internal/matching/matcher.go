package matching

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/types"
)

// defaultWorkers bounds the concurrent embedding calls per Match.
const defaultWorkers = 4

// Matcher scores resumes against a job description.
type Matcher struct {
	embedder Embedder
	workers  int
}

// NewMatcher creates a Matcher. A workers value <= 0 uses the default.
func NewMatcher(embedder Embedder, workers int) *Matcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Matcher{embedder: embedder, workers: workers}
}

// Match returns one result per resume in input order, each tagged with the
// resume's name and text and carrying the similarity percentage between the
// resume and the job description. Resumes embed concurrently; any embedding
// failure fails the whole call, since similarity has no numeric fallback.
func (m *Matcher) Match(ctx context.Context, jobText string, resumes []types.Resume) ([]types.MatchResult, error) {
	jobVec, err := m.embedder.Embed(ctx, jobText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	results := make([]types.MatchResult, len(resumes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i, resume := range resumes {
		g.Go(func() error {
			vec, err := m.embedder.Embed(ctx, resume.Text)
			if err != nil {
				return fmt.Errorf("failed to embed resume %s: %w", resume.Name, err)
			}
			score := Similarity(vec, jobVec)
			results[i] = types.MatchResult{
				Name:       resume.Name,
				Text:       resume.Text,
				Similarity: &score,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Similarity converts cosine similarity between two vectors to a percentage,
// rounded to two decimals.
func Similarity(a, b []float32) float64 {
	return math.Round(Cosine(a, b)*100*100) / 100
}

// Cosine computes the cosine similarity between two vectors. Mismatched
// lengths or zero-norm vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
