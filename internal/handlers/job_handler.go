package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

// JobService is the interface that wraps methods for job board business logic.
type JobService interface {
	// Method GetAll retrieves all job postings, newest first.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Job, error)
	// Method Create validates and persists a new job posting, returning its id.
	//
	// If a required field is missing, a ValidationError will be returned together with zero.
	Create(ctx context.Context, req *models.JobRequest) (int, error)
	// Method Update validates and fully replaces a job posting. An absent id still reports success.
	//
	// If a required field is missing, a ValidationError will be returned.
	Update(ctx context.Context, id int, req *models.JobRequest) error
	// Method Delete removes a job posting. An absent id still reports success.
	Delete(ctx context.Context, id int) error
}

// JobHandler handles job board HTTP requests
type JobHandler struct {
	BaseHandler
	jobService JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		BaseHandler: BaseHandler{logger: logger},
		jobService:  jobService,
	}
}

// RegisterRoutes registers all job handler routes
// Note: This assumes the router is already scoped to /api
func (h *JobHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.List)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List handles GET /jobs
// @Summary List job postings
// @Description Public list of job postings, newest first.
// @Tags jobs
// @Produce json
// @Success 200 {array} models.Job
// @Router /jobs [get]
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list jobs", zap.Error(err))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, jobs)
}

// Create handles POST /jobs
// @Summary Create a job posting
// @Description Create a job posting. All of title, location, experience, job_type and description are required.
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body models.JobRequest true "Job fields"
// @Success 200 {object} map[string]any "New job id"
// @Failure 400 {object} map[string]string "Missing field"
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.jobService.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

// Update handles PUT /jobs/{id}
// @Summary Replace a job posting
// @Description Fully replace a job posting's fields. Partial bodies are rejected.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job id"
// @Param request body models.JobRequest true "Job fields"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Missing field or bad id"
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.jobService.Update(r.Context(), id, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /jobs/{id}
// @Summary Delete a job posting
// @Description Delete a job posting. Deleting an absent id still reports success.
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
