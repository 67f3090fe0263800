package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashonecareers/backend/internal/auth"
	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminRepository is the interface that wraps methods for Admin table data access
type AdminRepository interface {
	// Method Count returns the number of stored admin identities.
	//
	// If some error occurs during the count, the error will be returned together with zero.
	Count(ctx context.Context) (int, error)
	// Method Create inserts a new admin into the database and sets its ID.
	//
	// If some error occurs during admin creation, the error will be returned.
	Create(ctx context.Context, admin *models.Admin) error
	// Method GetByUsername retrieves an admin by username.
	//
	// If an admin with such username does not exist, the error will be returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	// Method GetByID retrieves an admin by ID.
	//
	// If an admin with such ID does not exist, the error will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Admin, error)
	// Method UpdatePasswordHash replaces the stored password hash unconditionally.
	//
	// If some error occurs during the update, the error will be returned.
	UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error
	// Method Replace removes any existing admin identities and inserts the given one.
	//
	// If some error occurs during the replacement, the error will be returned.
	Replace(ctx context.Context, admin *models.Admin) error
}

// adminService implements admin authentication and bootstrap logic
type adminService struct {
	adminRepo      AdminRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo AdminRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *adminService {
	return &adminService{
		adminRepo:      adminRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Login authenticates the admin and issues a bearer token
func (s *adminService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return "", ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		// Absent admin and wrong password answer identically
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(admin.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Setup bootstraps the admin identity. A populated store rejects the
// call unless the reset flag is supplied, in which case the existing
// identity is replaced.
func (s *adminService) Setup(ctx context.Context, req *models.SetupRequest) error {
	username := strings.TrimSpace(req.Username)
	if err := requireFields(map[string]string{
		"username": username,
		"password": req.Password,
	}, []string{"username", "password"}); err != nil {
		return err
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 && !req.Reset {
		return ErrAdminExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(passwordHash),
	}

	if count > 0 {
		if err := s.adminRepo.Replace(ctx, admin); err != nil {
			return err
		}
		s.logger.Info("admin identity reset", zap.String("username", username))
		return nil
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("admin identity created", zap.String("username", username))
	return nil
}

// ChangePassword replaces the stored hash after confirming the current
// password.
func (s *adminService) ChangePassword(ctx context.Context, adminID int, req *models.ChangePasswordRequest) error {
	if err := requireFields(map[string]string{
		"currentPassword": req.CurrentPassword,
		"newPassword":     req.NewPassword,
	}, []string{"currentPassword", "newPassword"}); err != nil {
		return err
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.adminRepo.UpdatePasswordHash(ctx, adminID, string(passwordHash)); err != nil {
		return err
	}

	s.logger.Info("admin password changed", zap.Int("id", adminID))
	return nil
}

// Me confirms the token's admin still exists and returns its id
func (s *adminService) Me(ctx context.Context, adminID int) (int, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return 0, ErrInvalidCredentials
	}
	return admin.ID, nil
}
