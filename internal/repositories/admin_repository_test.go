package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hashonecareers/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// setupAdminTestRepository creates an admin repository with a mock database
func setupAdminTestRepository(t *testing.T) (*adminRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewAdminRepository(db, zaptest.NewLogger(t))

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewAdminRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewAdminRepository(db, zaptest.NewLogger(t))

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestAdminRepository_Count(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "empty store",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0)
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM admins`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name: "one admin",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1)
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM admins`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 1,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM admins`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			count, err := repo.Count(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCount, count)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		admin         *models.Admin
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name: "success",
			admin: &models.Admin{
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO admins`).
					WithArgs("admin", "hashedpassword").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedError: false,
			expectedID:    1,
		},
		{
			name: "database error on insert",
			admin: &models.Admin{
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO admins`).
					WithArgs("admin", "hashedpassword").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedID:    0,
		},
		{
			name: "error getting last insert id",
			admin: &models.Admin{
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO admins`).
					WithArgs("admin", "hashedpassword").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("last insert id error")))
			},
			expectedError: true,
			expectedID:    0,
		},
		{
			name: "duplicate username",
			admin: &models.Admin{
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO admins`).
					WithArgs("admin", "hashedpassword").
					WillReturnError(errors.New("Error 1062: Duplicate entry 'admin' for key 'username'"))
			},
			expectedError: true,
			expectedID:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.admin)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.admin.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_GetByUsername(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedAdmin *models.Admin
	}{
		{
			name:     "success",
			username: "admin",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
					AddRow(1, "admin", "hashedpassword")
				mock.ExpectQuery(`SELECT id, username, password_hash FROM admins WHERE username = \? LIMIT 1`).
					WithArgs("admin").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedAdmin: &models.Admin{
				ID:           1,
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "not found",
			username: "nonexistent",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, username, password_hash FROM admins WHERE username = \? LIMIT 1`).
					WithArgs("nonexistent").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			expectedAdmin: nil,
		},
		{
			name:     "database error",
			username: "admin",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, username, password_hash FROM admins WHERE username = \? LIMIT 1`).
					WithArgs("admin").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedAdmin: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			admin, err := repo.GetByUsername(context.Background(), tt.username)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdmin, admin)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedAdmin *models.Admin
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
					AddRow(1, "admin", "hashedpassword")
				mock.ExpectQuery(`SELECT id, username, password_hash FROM admins WHERE id = \? LIMIT 1`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedAdmin: &models.Admin{
				ID:           1,
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name: "not found",
			id:   42,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, username, password_hash FROM admins WHERE id = \? LIMIT 1`).
					WithArgs(42).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			expectedAdmin: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			admin, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdmin, admin)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_UpdatePasswordHash(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		passwordHash  string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name:         "success",
			id:           1,
			passwordHash: "newhash",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE admins SET password_hash = \? WHERE id = \?`).
					WithArgs("newhash", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name:         "database error",
			id:           1,
			passwordHash: "newhash",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE admins SET password_hash = \? WHERE id = \?`).
					WithArgs("newhash", 1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.UpdatePasswordHash(context.Background(), tt.id, tt.passwordHash)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_Replace(t *testing.T) {
	tests := []struct {
		name          string
		admin         *models.Admin
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name: "success",
			admin: &models.Admin{
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM admins`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO admins`).
					WithArgs("admin", "hashedpassword").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
			},
			expectedError: false,
			expectedID:    2,
		},
		{
			name: "delete fails and transaction rolls back",
			admin: &models.Admin{
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM admins`).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: true,
			expectedID:    0,
		},
		{
			name: "insert fails and transaction rolls back",
			admin: &models.Admin{
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM admins`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO admins`).
					WithArgs("admin", "hashedpassword").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: true,
			expectedID:    0,
		},
		{
			name: "commit fails",
			admin: &models.Admin{
				Username:     "admin",
				PasswordHash: "hashedpassword",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM admins`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO admins`).
					WithArgs("admin", "hashedpassword").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectedError: true,
			expectedID:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupAdminTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Replace(context.Background(), tt.admin)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.admin.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
