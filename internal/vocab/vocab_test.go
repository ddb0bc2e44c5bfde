package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSkills_WholeWordOnly(t *testing.T) {
	// "java" must not fire inside "javascript"
	skills := MatchSkills("Experienced JavaScript developer")
	assert.Contains(t, skills, "javascript")
	assert.NotContains(t, skills, "java")

	skills = MatchSkills("Experienced Java developer")
	assert.Contains(t, skills, "java")
	assert.NotContains(t, skills, "javascript")
}

func TestMatchSkills_SynonymsMapToCanonical(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"nodejs variant", "built services in node.js", "javascript"},
		{"k8s variant", "deployed on k8s clusters", "kubernetes"},
		{"sklearn variant", "models with sklearn", "scikit-learn"},
		{"ec2 variant", "provisioned EC2 instances", "aws"},
		{"phrase synonym", "applied natural language processing", "nlp"},
		{"multi-word canonical", "strong machine learning background", "machine learning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, MatchSkills(tt.text), tt.want)
		})
	}
}

func TestMatchSkills_CaseInsensitive(t *testing.T) {
	skills := MatchSkills("PYTHON and Docker and TensorFlow")
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "tensorflow")
}

func TestMatchSkills_SortedAndIdempotent(t *testing.T) {
	text := "sql, python, aws, docker"
	first := MatchSkills(text)
	second := MatchSkills(text)
	assert.Equal(t, first, second)
	assert.IsType(t, []string{}, first)
	assert.Equal(t, []string{"aws", "docker", "python", "sql"}, first)
}

func TestMatchSkills_EmptyText(t *testing.T) {
	assert.Empty(t, MatchSkills(""))
	assert.Empty(t, MatchSkills("nothing relevant here"))
}

func TestSkillSynonyms_EveryCanonicalListsItself(t *testing.T) {
	for canonical, terms := range SkillSynonyms {
		require.NotEmpty(t, terms, "canonical skill %q has no synonyms", canonical)
		assert.Contains(t, terms, canonical)
	}
}

func TestMatchesSeniority(t *testing.T) {
	assert.True(t, MatchesSeniority("senior", "Senior Software Engineer"))
	assert.True(t, MatchesSeniority("entry", "junior developer"))
	assert.False(t, MatchesSeniority("senior", "seniority is not a keyword match"))
	assert.False(t, MatchesSeniority("intern", "international experience"))
}

func TestMatchEducationLabels(t *testing.T) {
	labels := MatchEducationLabels("Masters in CS, previously a bachelor of science")
	assert.Contains(t, labels, "masters")
	assert.Contains(t, labels, "bachelor")
	assert.NotContains(t, labels, "phd")
}

func TestEducationRank(t *testing.T) {
	assert.Equal(t, 5, EducationRank("phd"))
	assert.Equal(t, 1, EducationRank("high school"))
	assert.Equal(t, 0, EducationRank(""))
	assert.Equal(t, 0, EducationRank("bootcamp"))
}
