package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

// SiteContentRepository is the interface that wraps methods for site content data access
type SiteContentRepository interface {
	// Method GetAll retrieves every content section.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.SiteContentSection, error)
	// Method Upsert inserts a section or wholesale-replaces its content by section key.
	//
	// If some error occurs during the upsert, the error will be returned.
	Upsert(ctx context.Context, sectionKey string, content json.RawMessage) error
}

// siteContentService implements site content editing logic. Section
// content is opaque to the backend; no schema is enforced server-side.
type siteContentService struct {
	contentRepo SiteContentRepository
	logger      *zap.Logger
}

// NewSiteContentService creates a new site content service
func NewSiteContentService(contentRepo SiteContentRepository, logger *zap.Logger) *siteContentService {
	return &siteContentService{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// GetAll returns all sections as a section-key to content map
func (s *siteContentService) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	sections, err := s.contentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	content := make(map[string]json.RawMessage, len(sections))
	for _, section := range sections {
		content[section.SectionKey] = section.Content
	}

	return content, nil
}

// Upsert validates and stores one section wholesale
func (s *siteContentService) Upsert(ctx context.Context, req *models.SiteContentUpsertRequest) error {
	sectionKey := strings.TrimSpace(req.Section)
	if sectionKey == "" {
		return &ValidationError{Message: "section is required"}
	}
	if len(req.Data) == 0 || !json.Valid(req.Data) {
		return &ValidationError{Message: "data must be a JSON document"}
	}

	if err := s.contentRepo.Upsert(ctx, sectionKey, req.Data); err != nil {
		return err
	}

	s.logger.Info("site content upserted", zap.String("section", sectionKey))
	return nil
}
