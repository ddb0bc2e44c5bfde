package db

import (
	"context"
	"fmt"
)

// AddScreening records a screening result and returns its ID.
func (db *DB) AddScreening(ctx context.Context, s Screening) (int, error) {
	var id int
	err := db.pool.QueryRow(ctx,
		`INSERT INTO screenings (job_id, candidate_id, similarity_score, final_score, feedback)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.JobID, s.CandidateID, s.SimilarityScore, s.FinalScore, s.Feedback,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create screening: %w", err)
	}
	return id, nil
}

// JobCandidates returns every candidate screened for a job, best first.
func (db *DB) JobCandidates(ctx context.Context, jobID int) ([]ScreenedCandidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT c.id, c.name, c.email, c.phone, c.resume_text, c.skills,
		        c.experience_years, c.education_level, c.created_at,
		        s.final_score, s.feedback
		 FROM candidates c
		 JOIN screenings s ON c.id = s.candidate_id
		 WHERE s.job_id = $1
		 ORDER BY s.final_score DESC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates for job %d: %w", jobID, err)
	}
	defer rows.Close()

	var result []ScreenedCandidate
	for rows.Next() {
		var sc ScreenedCandidate
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Email, &sc.Phone, &sc.ResumeText, &sc.Skills,
			&sc.ExperienceYears, &sc.EducationLevel, &sc.CreatedAt,
			&sc.FinalScore, &sc.Feedback); err != nil {
			return nil, fmt.Errorf("failed to scan screened candidate: %w", err)
		}
		result = append(result, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read screened candidates: %w", err)
	}
	return result, nil
}

// CandidateHistory returns a candidate's screenings, most recent first.
func (db *DB) CandidateHistory(ctx context.Context, candidateID int) ([]ScreeningWithJob, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.id, s.job_id, s.candidate_id, s.similarity_score, s.final_score,
		        s.feedback, s.created_at, j.title
		 FROM screenings s
		 JOIN jobs j ON s.job_id = j.id
		 WHERE s.candidate_id = $1
		 ORDER BY s.created_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenings for candidate %d: %w", candidateID, err)
	}
	defer rows.Close()

	var result []ScreeningWithJob
	for rows.Next() {
		var sw ScreeningWithJob
		if err := rows.Scan(&sw.ID, &sw.JobID, &sw.CandidateID, &sw.SimilarityScore, &sw.FinalScore,
			&sw.Feedback, &sw.CreatedAt, &sw.JobTitle); err != nil {
			return nil, fmt.Errorf("failed to scan screening: %w", err)
		}
		result = append(result, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read screenings: %w", err)
	}
	return result, nil
}
