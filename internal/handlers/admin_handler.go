package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hashonecareers/backend/internal/middleware"
	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

// AdminService is the interface that wraps methods for admin authentication business logic.
type AdminService interface {
	// Method Login authenticates the admin and issues a bearer token.
	//
	// "req" parameter contains username and password.
	//
	// If the credentials do not match the stored admin, ErrInvalidCredentials will be returned together with an empty token.
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	// Method Setup bootstraps the admin identity.
	//
	// "req" parameter contains username, password and the optional reset flag.
	//
	// If the credential store is already populated and no reset flag was supplied, ErrAdminExists will be returned.
	Setup(ctx context.Context, req *models.SetupRequest) error
	// Method ChangePassword replaces the stored hash after confirming the current password.
	//
	// "adminID" parameter identifies the authenticated admin.
	// "req" parameter contains the current and new passwords.
	//
	// If the current password does not match, ErrInvalidCredentials will be returned.
	ChangePassword(ctx context.Context, adminID int, req *models.ChangePasswordRequest) error
	// Method Me confirms the token's admin still exists and returns its id.
	//
	// If the admin no longer exists, ErrInvalidCredentials will be returned together with zero.
	Me(ctx context.Context, adminID int) (int, error)
}

// AdminHandler handles admin authentication HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  BaseHandler{logger: logger},
		adminService: adminService,
	}
}

// RegisterRoutes registers all admin handler routes
// Note: This assumes the router is already scoped to /api
func (h *AdminHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/setup", h.Setup)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/me", h.Me)
			r.Put("/change-password", h.ChangePassword)
		})
	})
}

// Login handles POST /admin/login
// @Summary Admin login
// @Description Authenticate the administrator and receive a bearer token valid for 12 hours.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]string "Bearer token"
// @Failure 401 {object} map[string]string "Invalid login"
// @Router /admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.adminService.Login(r.Context(), &req)
	if err != nil {
		h.logger.Warn("failed admin login", zap.String("username", req.Username))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Setup handles POST /admin/setup
// @Summary Bootstrap the admin account
// @Description Create the administrator identity when the credential store is empty. A populated store rejects the call unless reset is true.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.SetupRequest true "Setup request"
// @Success 200 {object} map[string]bool "Admin created"
// @Failure 400 {object} map[string]string "Missing field"
// @Failure 403 {object} map[string]string "Admin already set"
// @Router /admin/setup [post]
func (h *AdminHandler) Setup(w http.ResponseWriter, r *http.Request) {
	var req models.SetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.adminService.Setup(r.Context(), &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ChangePassword handles PUT /admin/change-password
// @Summary Change the admin password
// @Description Replace the stored password hash after confirming the current password.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password change request"
// @Success 200 {object} map[string]bool "Password changed"
// @Failure 401 {object} map[string]string "Current password mismatch"
// @Security BearerAuth
// @Router /admin/change-password [put]
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.adminService.ChangePassword(r.Context(), adminID, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /admin/me
// @Summary Check the admin identity
// @Description Confirm the bearer token maps to an existing administrator.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]any "Identity confirmation"
// @Failure 401 {object} map[string]string "Admin no longer exists"
// @Security BearerAuth
// @Router /admin/me [get]
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := h.adminService.Me(r.Context(), adminID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}
