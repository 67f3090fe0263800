package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashonecareers/backend/internal/services"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends a normalized {"message": ...} error response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// respondServiceError maps service errors to HTTP statuses: validation
// failures to 400, failed credentials to 401, a populated credential
// store to 403, everything else to 500 with the underlying message.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.respondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrInvalidCredentials):
		h.respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAdminExists):
		h.respondError(w, http.StatusForbidden, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}
