package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

type siteContentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSiteContentRepository creates a new site content repository
func NewSiteContentRepository(db *sql.DB, logger *zap.Logger) *siteContentRepository {
	return &siteContentRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves every content section
func (r *siteContentRepository) GetAll(ctx context.Context) ([]models.SiteContentSection, error) {
	query := `
		SELECT section_key, content
		FROM site_content
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query site content", zap.Error(err))
		return nil, fmt.Errorf("failed to query site content: %w", err)
	}
	defer rows.Close()

	sections := []models.SiteContentSection{}
	for rows.Next() {
		var section models.SiteContentSection
		var content []byte
		if err := rows.Scan(&section.SectionKey, &content); err != nil {
			r.logger.Error("failed to scan site content section", zap.Error(err))
			return nil, fmt.Errorf("failed to scan site content section: %w", err)
		}
		section.Content = json.RawMessage(content)
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate site content", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate site content: %w", err)
	}

	return sections, nil
}

// Upsert inserts a section or wholesale-replaces its content when the
// section key already exists.
func (r *siteContentRepository) Upsert(ctx context.Context, sectionKey string, content json.RawMessage) error {
	query := `
		INSERT INTO site_content (section_key, content)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE content = VALUES(content)
	`

	_, err := r.db.ExecContext(ctx, query, sectionKey, []byte(content))
	if err != nil {
		r.logger.Error("failed to upsert site content", zap.Error(err), zap.String("section", sectionKey))
		return fmt.Errorf("failed to upsert site content: %w", err)
	}

	return nil
}
