package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(types.JobRequirements{
		Skills:    []string{"python", "sql"},
		Seniority: "senior",
		MinYears:  3,
	})

	out := buf.String()
	assert.Contains(t, out, "Job Requirements")
	assert.Contains(t, out, "python, sql")
	assert.Contains(t, out, "Minimum years:   3")
	assert.Contains(t, out, "senior")
}

func TestPrintRequirements_NoneDetected(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(types.JobRequirements{})
	assert.Contains(t, buf.String(), "(none detected)")
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile("alice.pdf", types.Profile{
		Skills:          []string{"python"},
		ExperienceYears: 5,
		Education:       "masters",
	})

	out := buf.String()
	assert.Contains(t, out, "alice.pdf")
	assert.Contains(t, out, "Experience: 5 years")
	assert.Contains(t, out, "masters")
}

func TestPrintRanked(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanked([]types.RankedCandidate{
		{Name: "alice.pdf", FinalScore: 97.5, Similarity: 70, MatchedSkills: []string{"python"}, Reason: "Good semantic similarity."},
	})

	out := buf.String()
	assert.Contains(t, out, "1. alice.pdf")
	assert.Contains(t, out, "matched: python")
}

func TestPrintRanked_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanked(nil)
	assert.Contains(t, buf.String(), "(no candidates)")
}
