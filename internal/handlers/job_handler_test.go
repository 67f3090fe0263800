package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hashonecareers/backend/internal/middleware"
	"github.com/hashonecareers/backend/internal/models"
	"github.com/hashonecareers/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// mockJobService is a mock implementation of JobService
type mockJobService struct {
	jobs      []models.Job
	getAllErr error
	createID  int
	createErr error
	updateErr error
	deleteErr error
	updatedID int
	deletedID int
}

func (m *mockJobService) GetAll(ctx context.Context) ([]models.Job, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	return m.jobs, nil
}

func (m *mockJobService) Create(ctx context.Context, req *models.JobRequest) (int, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	return m.createID, nil
}

func (m *mockJobService) Update(ctx context.Context, id int, req *models.JobRequest) error {
	m.updatedID = id
	return m.updateErr
}

func (m *mockJobService) Delete(ctx context.Context, id int) error {
	m.deletedID = id
	return m.deleteErr
}

func setupJobTestRouter(t *testing.T, svc JobService) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	h := NewJobHandler(svc, zaptest.NewLogger(t))
	h.RegisterRoutes(r, middleware.AuthMiddleware(testTokenGenerator))
	return r
}

const validJobBody = `{"title":"Backend Engineer","location":"Remote","experience":"3+ years","job_type":"Full-time","description":"Build APIs","form_url":"https://forms.example/1"}`

func TestJobHandler_List(t *testing.T) {
	t.Run("public listing needs no token", func(t *testing.T) {
		jobs := []models.Job{
			{ID: 2, Title: "Backend Engineer", CreatedAt: time.Now()},
			{ID: 1, Title: "Designer", CreatedAt: time.Now().Add(-time.Hour)},
		}
		router := setupJobTestRouter(t, &mockJobService{jobs: jobs})

		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.Job
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, "Backend Engineer", got[0].Title)
	})

	t.Run("empty board returns empty array not null", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{jobs: []models.Job{}})

		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("service error answers 500", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{getAllErr: errors.New("database error")})

		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestJobHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{createID: 42})

		req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(validJobBody))
		req.Header.Set("Authorization", bearerToken(t, 1))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(42), body["id"])
	})

	t.Run("missing field answers 400", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{
			createErr: &services.ValidationError{Message: "description is required"},
		})

		req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"title":"Backend Engineer"}`))
		req.Header.Set("Authorization", bearerToken(t, 1))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "description is required", decodeBody(t, rec)["message"])
	})

	t.Run("no token answers 401", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{createID: 42})

		req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(validJobBody))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token answers 403", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{createID: 42})

		req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(validJobBody))
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestJobHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockJobService{}
		router := setupJobTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodPut, "/jobs/5", strings.NewReader(validJobBody))
		req.Header.Set("Authorization", bearerToken(t, 1))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, svc.updatedID)
	})

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{})

		req := httptest.NewRequest(http.MethodPut, "/jobs/abc", strings.NewReader(validJobBody))
		req.Header.Set("Authorization", bearerToken(t, 1))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid id", decodeBody(t, rec)["message"])
	})

	t.Run("absent id still reports success", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{})

		req := httptest.NewRequest(http.MethodPut, "/jobs/999", strings.NewReader(validJobBody))
		req.Header.Set("Authorization", bearerToken(t, 1))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
	})
}

func TestJobHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockJobService{}
		router := setupJobTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodDelete, "/jobs/3", nil)
		req.Header.Set("Authorization", bearerToken(t, 1))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, svc.deletedID)
	})

	t.Run("no token answers 401", func(t *testing.T) {
		router := setupJobTestRouter(t, &mockJobService{})

		req := httptest.NewRequest(http.MethodDelete, "/jobs/3", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
