// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents the structured signals extracted from a single text
// (resume or job description). Constructed once per text; never mutated.
type Profile struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Seniority       string   `json:"seniority,omitempty"`
	Education       string   `json:"education,omitempty"`
	Organizations   []string `json:"organizations,omitempty"`
}

// JobRequirements is a Profile derived from a job description, relabeled for
// the ranker. MinYears of 0 means the posting states no experience minimum.
type JobRequirements struct {
	Skills    []string `json:"required_skills"`
	Seniority string   `json:"required_seniority,omitempty"`
	Education string   `json:"required_education,omitempty"`
	MinYears  int      `json:"minimum_years"`
}
