// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is a named resume text produced by the ingestion layer.
type Resume struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// MatchResult pairs a resume with its semantic similarity to a job
// description. Similarity is a percentage in [0,100]; nil means no embedding
// was computed and the ranker falls back to its neutral base score.
type MatchResult struct {
	Name       string   `json:"name"`
	Text       string   `json:"text"`
	Similarity *float64 `json:"similarity,omitempty"`
}

// RankedCandidate is one row of a ranking result, ordered by FinalScore
// descending. MatchedSkills and AllSkills are sorted.
type RankedCandidate struct {
	Name            string   `json:"name"`
	Similarity      float64  `json:"similarity"`
	FinalScore      float64  `json:"final_score"`
	MatchedSkills   []string `json:"matched_skills"`
	AllSkills       []string `json:"all_skills"`
	ExperienceYears int      `json:"experience_years"`
	Seniority       string   `json:"seniority,omitempty"`
	Education       string   `json:"education,omitempty"`
	Reason          string   `json:"reason"`
}
