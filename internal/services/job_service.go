package services

import (
	"context"

	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

// JobsRepository is the interface that wraps methods for Jobs table data access
type JobsRepository interface {
	// Method GetAll retrieves all job postings, newest first.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Job, error)
	// Method Create inserts a new job posting and sets its ID.
	//
	// If some error occurs during job creation, the error will be returned.
	Create(ctx context.Context, job *models.Job) error
	// Method Update fully replaces a job posting's fields. An absent id is a silent no-op.
	//
	// If some error occurs during the update, the error will be returned.
	Update(ctx context.Context, id int, job *models.Job) error
	// Method Delete removes a job posting. An absent id is a silent no-op.
	//
	// If some error occurs during the deletion, the error will be returned.
	Delete(ctx context.Context, id int) error
}

// jobService implements job board business logic
type jobService struct {
	jobRepo JobsRepository
	logger  *zap.Logger
}

// NewJobService creates a new job service
func NewJobService(jobRepo JobsRepository, logger *zap.Logger) *jobService {
	return &jobService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// validateJobRequest enforces the replace-with-required-all-fields
// contract: partial bodies are rejected rather than zeroing columns.
func validateJobRequest(req *models.JobRequest) error {
	return requireFields(map[string]string{
		"title":       req.Title,
		"location":    req.Location,
		"experience":  req.Experience,
		"job_type":    req.JobType,
		"description": req.Description,
	}, []string{"title", "location", "experience", "job_type", "description"})
}

// GetAll retrieves all job postings, newest first
func (s *jobService) GetAll(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.GetAll(ctx)
}

// Create validates and persists a new job posting, returning its id
func (s *jobService) Create(ctx context.Context, req *models.JobRequest) (int, error) {
	if err := validateJobRequest(req); err != nil {
		return 0, err
	}

	job := &models.Job{
		Title:       req.Title,
		Location:    req.Location,
		Experience:  req.Experience,
		JobType:     req.JobType,
		Description: req.Description,
		FormURL:     req.FormURL,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return 0, err
	}

	s.logger.Info("job created", zap.Int("id", job.ID), zap.String("title", job.Title))
	return job.ID, nil
}

// Update validates and fully replaces a job posting
func (s *jobService) Update(ctx context.Context, id int, req *models.JobRequest) error {
	if err := validateJobRequest(req); err != nil {
		return err
	}

	job := &models.Job{
		Title:       req.Title,
		Location:    req.Location,
		Experience:  req.Experience,
		JobType:     req.JobType,
		Description: req.Description,
		FormURL:     req.FormURL,
	}

	return s.jobRepo.Update(ctx, id, job)
}

// Delete removes a job posting; absent ids still report success
func (s *jobService) Delete(ctx context.Context, id int) error {
	return s.jobRepo.Delete(ctx, id)
}
