package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// AddCandidate stores a candidate record and returns its ID.
func (db *DB) AddCandidate(ctx context.Context, c Candidate) (int, error) {
	if c.Skills == nil {
		c.Skills = []string{}
	}

	var id int
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, resume_text, skills, experience_years, education_level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		c.Name, c.Email, c.Phone, c.ResumeText, c.Skills, c.ExperienceYears, c.EducationLevel,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil when no row exists.
func (db *DB) GetCandidate(ctx context.Context, id int) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, resume_text, skills, experience_years, education_level, created_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.ResumeText, &c.Skills, &c.ExperienceYears, &c.EducationLevel, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate %d: %w", id, err)
	}
	return &c, nil
}
