package services

import (
	"context"

	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

// TeamMembersRepository is the interface that wraps methods for team member data access
type TeamMembersRepository interface {
	// Method GetAll retrieves all team members ordered by sort_order, ties broken by id.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	// Method Create inserts a new team member and sets its ID.
	//
	// If some error occurs during team member creation, the error will be returned.
	Create(ctx context.Context, member *models.TeamMember) error
	// Method Update fully replaces a team member's fields. An absent id is a silent no-op.
	//
	// If some error occurs during the update, the error will be returned.
	Update(ctx context.Context, id int, member *models.TeamMember) error
	// Method Delete removes a team member. An absent id is a silent no-op.
	//
	// If some error occurs during the deletion, the error will be returned.
	Delete(ctx context.Context, id int) error
}

// teamMemberService implements team roster business logic
type teamMemberService struct {
	memberRepo TeamMembersRepository
	logger     *zap.Logger
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(memberRepo TeamMembersRepository, logger *zap.Logger) *teamMemberService {
	return &teamMemberService{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func validateTeamMemberRequest(req *models.TeamMemberRequest) error {
	return requireFields(map[string]string{
		"name": req.Name,
		"role": req.Role,
	}, []string{"name", "role"})
}

// GetAll retrieves the team roster in display order
func (s *teamMemberService) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	return s.memberRepo.GetAll(ctx)
}

// Create validates and persists a new team member, returning its id
func (s *teamMemberService) Create(ctx context.Context, req *models.TeamMemberRequest) (int, error) {
	if err := validateTeamMemberRequest(req); err != nil {
		return 0, err
	}

	member := &models.TeamMember{
		Name:      req.Name,
		Role:      req.Role,
		Bio:       req.Bio,
		Photo:     req.Photo,
		SortOrder: req.SortOrder,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return 0, err
	}

	s.logger.Info("team member created", zap.Int("id", member.ID), zap.String("name", member.Name))
	return member.ID, nil
}

// Update validates and fully replaces a team member
func (s *teamMemberService) Update(ctx context.Context, id int, req *models.TeamMemberRequest) error {
	if err := validateTeamMemberRequest(req); err != nil {
		return err
	}

	member := &models.TeamMember{
		Name:      req.Name,
		Role:      req.Role,
		Bio:       req.Bio,
		Photo:     req.Photo,
		SortOrder: req.SortOrder,
	}

	return s.memberRepo.Update(ctx, id, member)
}

// Delete removes a team member; absent ids still report success
func (s *teamMemberService) Delete(ctx context.Context, id int) error {
	return s.memberRepo.Delete(ctx, id)
}
