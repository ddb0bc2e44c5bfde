package db

import "time"

// Job is a stored job posting.
type Job struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	MinimumYears   int       `json:"minimum_years"`
	CreatedAt      time.Time `json:"created_at"`
}

// Candidate is a stored candidate record with its extracted signals.
type Candidate struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	ResumeText      string    `json:"resume_text"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	EducationLevel  string    `json:"education_level,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Screening is one recorded screening of a candidate against a job.
type Screening struct {
	ID              int       `json:"id"`
	JobID           int       `json:"job_id"`
	CandidateID     int       `json:"candidate_id"`
	SimilarityScore float64   `json:"similarity_score"`
	FinalScore      float64   `json:"final_score"`
	Feedback        string    `json:"feedback"`
	CreatedAt       time.Time `json:"created_at"`
}

// ScreenedCandidate is a candidate joined with its screening result for a
// job, ordered by final score descending.
type ScreenedCandidate struct {
	Candidate
	FinalScore float64 `json:"final_score"`
	Feedback   string  `json:"feedback"`
}

// ScreeningWithJob is a screening joined with its job title, for candidate
// history queries.
type ScreeningWithJob struct {
	Screening
	JobTitle string `json:"job_title"`
}
