package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hashonecareers/backend/internal/auth"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// AuthMiddleware validates the bearer token and extracts the admin id.
// A missing credential answers 401, a present but invalid or expired
// one answers 403.
func AuthMiddleware(tokenGenerator *auth.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			var token string
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				// Expected format: "Bearer <token>"
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					token = parts[1]
				}
			}

			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"authentication required"}`))
				return
			}

			adminID, err := tokenGenerator.Validate(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"message":"invalid or expired token"}`))
				return
			}

			// Add admin id to context
			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID retrieves the admin id from context
func GetAdminID(ctx context.Context) (int, bool) {
	adminID, ok := ctx.Value(adminIDKey).(int)
	return adminID, ok
}
