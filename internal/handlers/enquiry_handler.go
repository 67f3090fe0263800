package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

// EnquiryService is the interface that wraps the enquiry relay logic.
type EnquiryService interface {
	// Method Send validates the enquiry and relays it by email.
	//
	// If name, email or message is missing, a ValidationError will be returned;
	// an SMTP failure surfaces as-is.
	Send(ctx context.Context, enquiry *models.Enquiry) error
}

// EnquiryHandler handles contact form HTTP requests
type EnquiryHandler struct {
	BaseHandler
	enquiryService EnquiryService
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquiryService EnquiryService, logger *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		BaseHandler:    BaseHandler{logger: logger},
		enquiryService: enquiryService,
	}
}

// RegisterRoutes registers all enquiry handler routes
// Note: This assumes the router is already scoped to /api
func (h *EnquiryHandler) RegisterRoutes(r chi.Router) {
	r.Post("/enquiry", h.Send)
}

// Send handles POST /enquiry
// @Summary Submit an enquiry
// @Description Relay a contact form submission by email. Name, email and message are required.
// @Tags enquiry
// @Accept json
// @Produce json
// @Param request body models.Enquiry true "Enquiry"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Missing field"
// @Failure 500 {object} map[string]string "Mail relay failed"
// @Router /enquiry [post]
func (h *EnquiryHandler) Send(w http.ResponseWriter, r *http.Request) {
	var enquiry models.Enquiry
	if err := json.NewDecoder(r.Body).Decode(&enquiry); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.enquiryService.Send(r.Context(), &enquiry); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
