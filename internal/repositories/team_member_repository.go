package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

type teamMemberRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *sql.DB, logger *zap.Logger) *teamMemberRepository {
	return &teamMemberRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all team members ordered by sort_order, ties broken by id
func (r *teamMemberRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	query := `
		SELECT id, name, role, bio, photo, sort_order, created_at
		FROM team_members
		ORDER BY sort_order ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query team members", zap.Error(err))
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	members := []models.TeamMember{}
	for rows.Next() {
		var member models.TeamMember
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Role,
			&member.Bio,
			&member.Photo,
			&member.SortOrder,
			&member.CreatedAt,
		); err != nil {
			r.logger.Error("failed to scan team member", zap.Error(err))
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate team members", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}

	return members, nil
}

// Create inserts a new team member
func (r *teamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (name, role, bio, photo, sort_order)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		member.Name, member.Role, member.Bio, member.Photo, member.SortOrder)
	if err != nil {
		r.logger.Error("failed to create team member", zap.Error(err))
		return fmt.Errorf("failed to create team member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	member.ID = int(id)
	return nil
}

// Update fully replaces a team member's fields. Updating an id that
// does not exist is a silent no-op.
func (r *teamMemberRepository) Update(ctx context.Context, id int, member *models.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = ?, role = ?, bio = ?, photo = ?, sort_order = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		member.Name, member.Role, member.Bio, member.Photo, member.SortOrder, id)
	if err != nil {
		r.logger.Error("failed to update team member", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to update team member: %w", err)
	}

	return nil
}

// Delete removes a team member. Deleting an id that does not exist is
// a silent no-op.
func (r *teamMemberRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM team_members WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete team member", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	return nil
}
