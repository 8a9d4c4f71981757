package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

const jobColumns = `id, title, company, location, remote_type, job_type,
	salary_min, salary_max, description, requirements, industry, experience_level`

func scanJob(row pgx.Row) (*types.JobPosting, error) {
	var j types.JobPosting
	var requirementsJSON []byte

	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.RemoteType,
		&j.JobType, &j.SalaryMin, &j.SalaryMax, &j.Description,
		&requirementsJSON, &j.Industry, &j.ExperienceLevel)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(requirementsJSON, &j.Requirements); err != nil {
		return nil, fmt.Errorf("failed to decode job requirements: %w", err)
	}
	return &j, nil
}

// GetJob retrieves a job posting by ID. Returns (nil, nil) when the job does
// not exist.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs retrieves the full job catalog ordered by title.
func (db *DB) ListJobs(ctx context.Context) ([]*types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_postings ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*types.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// UpsertJob creates or replaces a job posting.
func (db *DB) UpsertJob(ctx context.Context, job *types.JobPosting) error {
	requirementsJSON, err := json.Marshal(job.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_postings (id, title, company, location, remote_type,
		     job_type, salary_min, salary_max, description, requirements,
		     industry, experience_level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		     title = $2, company = $3, location = $4, remote_type = $5,
		     job_type = $6, salary_min = $7, salary_max = $8, description = $9,
		     requirements = $10, industry = $11, experience_level = $12,
		     updated_at = NOW()`,
		job.ID, job.Title, job.Company, job.Location, job.RemoteType,
		job.JobType, job.SalaryMin, job.SalaryMax, job.Description,
		requirementsJSON, job.Industry, job.ExperienceLevel,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job: %w", err)
	}
	return nil
}

// DeleteJob removes a job posting.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}
