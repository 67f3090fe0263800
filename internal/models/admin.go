package models

// Admin represents the single administrator identity
type Admin struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never serialize password hash
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SetupRequest represents the one-time admin bootstrap request.
// Reset replaces an existing admin instead of rejecting the call.
type SetupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Reset    bool   `json:"reset,omitempty"`
}

// ChangePasswordRequest represents an admin password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
