package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers
var (
	// ErrInvalidCredentials covers failed logins and failed
	// current-password confirmation
	ErrInvalidCredentials = errors.New("Invalid login")
	// ErrAdminExists is returned by Setup when the credential store is
	// already populated and no reset flag was supplied
	ErrAdminExists = errors.New("Admin already set")
)

// ValidationError reports a missing or empty required field on a
// create or full-replace request. Handlers answer it with 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// requireFields returns a ValidationError naming the first empty field
func requireFields(fields map[string]string, order []string) error {
	for _, name := range order {
		if fields[name] == "" {
			return &ValidationError{Message: name + " is required"}
		}
	}
	return nil
}
