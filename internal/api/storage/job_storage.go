package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/applytrack/applytrack-be/internal/api/domain"
	"github.com/applytrack/applytrack-be/internal/api/model"
	"github.com/applytrack/applytrack-be/shared/postgresql"
	"github.com/jmoiron/sqlx"
)

const jobColumns = `job_id, owner_email, company, "role", status, applied_date, notes, created_at, updated_at`

type JobStorage struct {
	db *sqlx.DB
}

func NewJobStorage(pg *postgresql.Client) *JobStorage {
	return &JobStorage{
		db: pg.GetDB(),
	}
}

func (s *JobStorage) CreateJob(ctx context.Context, job *model.JobApplication) error {
	query := `
		INSERT INTO job_applications (
			job_id, owner_email, company, "role",
			status, applied_date, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		job.JobID,
		job.OwnerEmail,
		job.Company,
		job.Role,
		job.Status,
		job.AppliedDate,
		job.Notes,
		job.CreatedAt,
		job.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// ListJobsByOwner returns every application for the owner, newest first.
// job_id breaks created_at ties so the order is deterministic.
func (s *JobStorage) ListJobsByOwner(ctx context.Context, ownerEmail string) ([]model.JobApplication, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM job_applications
		WHERE owner_email = $1
		ORDER BY created_at DESC, job_id DESC
	`

	jobs := []model.JobApplication{}
	err := s.db.SelectContext(ctx, &jobs, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// UpdateJob applies the non-nil fields of upd to one record and returns the
// updated row. Returns domain.ErrJobNotFound when the id does not exist.
func (s *JobStorage) UpdateJob(ctx context.Context, jobID string, upd domain.JobUpdate) (*model.JobApplication, error) {
	query, args := buildJobUpdate(jobID, upd)

	var job model.JobApplication
	err := s.db.GetContext(ctx, &job, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return &job, nil
}

// buildJobUpdate assembles the SET clause from the supplied fields only.
// updated_at is always touched; an empty update degenerates to a timestamp
// bump, which still round-trips the row for the NotFound check.
func buildJobUpdate(jobID string, upd domain.JobUpdate) (string, []interface{}) {
	query := `UPDATE job_applications SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if upd.Company != nil {
		query += fmt.Sprintf(`, company = $%d`, argIdx)
		args = append(args, *upd.Company)
		argIdx++
	}

	if upd.Role != nil {
		query += fmt.Sprintf(`, "role" = $%d`, argIdx)
		args = append(args, *upd.Role)
		argIdx++
	}

	if upd.Status != nil {
		query += fmt.Sprintf(`, status = $%d`, argIdx)
		args = append(args, *upd.Status)
		argIdx++
	}

	if upd.AppliedDate != nil {
		query += fmt.Sprintf(`, applied_date = $%d`, argIdx)
		args = append(args, *upd.AppliedDate)
		argIdx++
	}

	if upd.Notes != nil {
		query += fmt.Sprintf(`, notes = $%d`, argIdx)
		args = append(args, *upd.Notes)
		argIdx++
	}

	query += fmt.Sprintf(` WHERE job_id = $%d RETURNING `+jobColumns, argIdx)
	args = append(args, jobID)

	return query, args
}

func (s *JobStorage) DeleteJob(ctx context.Context, jobID string) error {
	query := `DELETE FROM job_applications WHERE job_id = $1`

	result, err := s.db.ExecContext(ctx, query, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}

// CountJobsByStatus returns a status -> count map for the owner from a single
// grouped query. Statuses with no records are absent from the map.
func (s *JobStorage) CountJobsByStatus(ctx context.Context, ownerEmail string) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM job_applications
		WHERE owner_email = $1
		GROUP BY status
	`

	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}

	err := s.db.SelectContext(ctx, &rows, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
