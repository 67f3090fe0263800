package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

type jobRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sql.DB, logger *zap.Logger) *jobRepository {
	return &jobRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all job postings, newest first
func (r *jobRepository) GetAll(ctx context.Context) ([]models.Job, error) {
	query := `
		SELECT id, title, location, experience, job_type, description, form_url, created_at
		FROM jobs
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query jobs", zap.Error(err))
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Location,
			&job.Experience,
			&job.JobType,
			&job.Description,
			&job.FormURL,
			&job.CreatedAt,
		); err != nil {
			r.logger.Error("failed to scan job", zap.Error(err))
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate jobs", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// Create inserts a new job posting
func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (title, location, experience, job_type, description, form_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		job.Title, job.Location, job.Experience, job.JobType, job.Description, job.FormURL)
	if err != nil {
		r.logger.Error("failed to create job", zap.Error(err))
		return fmt.Errorf("failed to create job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	job.ID = int(id)
	return nil
}

// Update fully replaces a job posting's fields. Updating an id that
// does not exist is a silent no-op.
func (r *jobRepository) Update(ctx context.Context, id int, job *models.Job) error {
	query := `
		UPDATE jobs
		SET title = ?, location = ?, experience = ?, job_type = ?, description = ?, form_url = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		job.Title, job.Location, job.Experience, job.JobType, job.Description, job.FormURL, id)
	if err != nil {
		r.logger.Error("failed to update job", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to update job: %w", err)
	}

	return nil
}

// Delete removes a job posting. Deleting an id that does not exist is
// a silent no-op.
func (r *jobRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM jobs WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete job", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}
