package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// AddJob stores a job posting and returns its ID.
func (db *DB) AddJob(ctx context.Context, title, description string, requiredSkills []string, minimumYears int) (int, error) {
	if requiredSkills == nil {
		requiredSkills = []string{}
	}

	var id int
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, required_skills, minimum_years)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		title, description, requiredSkills, minimumYears,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job posting by ID. Returns nil when no row exists.
func (db *DB) GetJob(ctx context.Context, id int) (*Job, error) {
	var job Job
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, required_skills, minimum_years, created_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Description, &job.RequiredSkills, &job.MinimumYears, &job.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %d: %w", id, err)
	}
	return &job, nil
}
