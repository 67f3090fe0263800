package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

// SiteContentService is the interface that wraps methods for site content business logic.
type SiteContentService interface {
	// Method GetAll returns all sections as a section-key to content map.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) (map[string]json.RawMessage, error)
	// Method Upsert validates and stores one section wholesale.
	//
	// If the section key is empty or the data is not a JSON document, a ValidationError will be returned.
	Upsert(ctx context.Context, req *models.SiteContentUpsertRequest) error
}

// SiteContentHandler handles site content HTTP requests
type SiteContentHandler struct {
	BaseHandler
	contentService SiteContentService
}

// NewSiteContentHandler creates a new site content handler
func NewSiteContentHandler(contentService SiteContentService, logger *zap.Logger) *SiteContentHandler {
	return &SiteContentHandler{
		BaseHandler:    BaseHandler{logger: logger},
		contentService: contentService,
	}
}

// RegisterRoutes registers all site content handler routes
// Note: This assumes the router is already scoped to /api
func (h *SiteContentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/site-content", func(r chi.Router) {
		r.Get("/", h.List)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Put("/", h.Upsert)
		})
	})
}

// List handles GET /site-content
// @Summary Get all site content
// @Description Public map of section keys to their content documents.
// @Tags site-content
// @Produce json
// @Success 200 {object} map[string]any
// @Router /site-content [get]
func (h *SiteContentHandler) List(w http.ResponseWriter, r *http.Request) {
	content, err := h.contentService.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list site content", zap.Error(err))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, content)
}

// Upsert handles PUT /site-content
// @Summary Upsert one content section
// @Description Insert a section or wholesale-replace its content by section key. No merge.
// @Tags site-content
// @Accept json
// @Produce json
// @Param request body models.SiteContentUpsertRequest true "Section upsert"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Missing section or data"
// @Security BearerAuth
// @Router /site-content [put]
func (h *SiteContentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.SiteContentUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contentService.Upsert(r.Context(), &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
