package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func sampleRanked() []types.RankedCandidate {
	return []types.RankedCandidate{
		{
			Name:            "alice.pdf",
			Similarity:      82.5,
			FinalScore:      95.0,
			AllSkills:       []string{"python", "sql"},
			ExperienceYears: 6,
			Reason:          "Strong semantic similarity; skill overlap: python, sql.",
		},
		{
			Name:            "bob.pdf",
			Similarity:      61.0,
			FinalScore:      71.0,
			AllSkills:       []string{"python"},
			ExperienceYears: 2,
			Reason:          "Good semantic similarity; skill overlap: python.",
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRanked())

	assert.Equal(t, 2, s.TotalCandidates)
	assert.InDelta(t, 83.0, s.AverageScore, 1e-9)
	assert.InDelta(t, 4.0, s.AverageExperience, 1e-9)

	require.Len(t, s.TopSkills, 2)
	assert.Equal(t, SkillCount{Skill: "python", Count: 2}, s.TopSkills[0])
	assert.Equal(t, SkillCount{Skill: "sql", Count: 1}, s.TopSkills[1])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalCandidates)
	assert.Zero(t, s.AverageScore)
	assert.Empty(t, s.TopSkills)
}

func TestTopSkills_DeterministicTieBreak(t *testing.T) {
	counts := map[string]int{"sql": 1, "aws": 1, "python": 1}
	top := topSkills(counts, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "aws", top[0].Skill)
	assert.Equal(t, "python", top[1].Skill)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, "Data Engineer", sampleRanked())
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Screening Report - Data Engineer")
	assert.Contains(t, html, "alice.pdf")
	assert.Contains(t, html, "bob.pdf")
	assert.Contains(t, html, "python: 2 candidates")
	assert.Contains(t, html, "95.00")
}
