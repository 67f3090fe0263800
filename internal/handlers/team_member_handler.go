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

// TeamMemberService is the interface that wraps methods for team roster business logic.
type TeamMemberService interface {
	// Method GetAll retrieves the team roster ordered by sort_order, ties broken by id.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	// Method Create validates and persists a new team member, returning its id.
	//
	// If a required field is missing, a ValidationError will be returned together with zero.
	Create(ctx context.Context, req *models.TeamMemberRequest) (int, error)
	// Method Update validates and fully replaces a team member. An absent id still reports success.
	Update(ctx context.Context, id int, req *models.TeamMemberRequest) error
	// Method Delete removes a team member. An absent id still reports success.
	Delete(ctx context.Context, id int) error
}

// TeamMemberHandler handles team roster HTTP requests
type TeamMemberHandler struct {
	BaseHandler
	memberService TeamMemberService
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(memberService TeamMemberService, logger *zap.Logger) *TeamMemberHandler {
	return &TeamMemberHandler{
		BaseHandler:   BaseHandler{logger: logger},
		memberService: memberService,
	}
}

// RegisterRoutes registers all team member handler routes
// Note: This assumes the router is already scoped to /api
func (h *TeamMemberHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/team-members", func(r chi.Router) {
		r.Get("/", h.List)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List handles GET /team-members
// @Summary List team members
// @Description Public team roster in display order.
// @Tags team-members
// @Produce json
// @Success 200 {array} models.TeamMember
// @Router /team-members [get]
func (h *TeamMemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list team members", zap.Error(err))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, members)
}

// Create handles POST /team-members
// @Summary Create a team member
// @Description Create a team member. Name and role are required.
// @Tags team-members
// @Accept json
// @Produce json
// @Param request body models.TeamMemberRequest true "Member fields"
// @Success 200 {object} map[string]any "New member id"
// @Failure 400 {object} map[string]string "Missing field"
// @Security BearerAuth
// @Router /team-members [post]
func (h *TeamMemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.memberService.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

// Update handles PUT /team-members/{id}
// @Summary Replace a team member
// @Description Fully replace a team member's fields. Partial bodies are rejected.
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path int true "Member id"
// @Param request body models.TeamMemberRequest true "Member fields"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Missing field or bad id"
// @Security BearerAuth
// @Router /team-members/{id} [put]
func (h *TeamMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.TeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.memberService.Update(r.Context(), id, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /team-members/{id}
// @Summary Delete a team member
// @Description Delete a team member. Deleting an absent id still reports success.
// @Tags team-members
// @Produce json
// @Param id path int true "Member id"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /team-members/{id} [delete]
func (h *TeamMemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.memberService.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
