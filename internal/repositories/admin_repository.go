package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

type adminRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sql.DB, logger *zap.Logger) *adminRepository {
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// Count returns the number of stored admin identities
func (r *adminRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM admins`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		r.logger.Error("failed to count admins", zap.Error(err))
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}

// Create inserts a new admin into the database
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, admin.Username, admin.PasswordHash)
	if err != nil {
		r.logger.Error("failed to create admin", zap.Error(err))
		return fmt.Errorf("failed to create admin: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	admin.ID = int(id)
	return nil
}

// GetByUsername retrieves an admin by username
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT id, username, password_hash
		FROM admins
		WHERE username = ?
		LIMIT 1
	`

	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin not found")
	}
	if err != nil {
		r.logger.Error("failed to get admin by username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return admin, nil
}

// GetByID retrieves an admin by id
func (r *adminRepository) GetByID(ctx context.Context, id int) (*models.Admin, error) {
	query := `
		SELECT id, username, password_hash
		FROM admins
		WHERE id = ?
		LIMIT 1
	`

	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin not found")
	}
	if err != nil {
		r.logger.Error("failed to get admin by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return admin, nil
}

// UpdatePasswordHash replaces the stored password hash for an admin
func (r *adminRepository) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error {
	query := `UPDATE admins SET password_hash = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		r.logger.Error("failed to update password hash", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	return nil
}

// Replace removes any existing admin identities and inserts the given
// one in a single transaction (the reset path of the setup call).
func (r *adminRepository) Replace(ctx context.Context, admin *models.Admin) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Error("failed to begin transaction", zap.Error(err))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM admins`); err != nil {
		r.logger.Error("failed to clear admins", zap.Error(err))
		return fmt.Errorf("failed to clear admins: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO admins (username, password_hash) VALUES (?, ?)`,
		admin.Username, admin.PasswordHash,
	)
	if err != nil {
		r.logger.Error("failed to insert admin", zap.Error(err))
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit transaction", zap.Error(err))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	admin.ID = int(id)
	return nil
}
