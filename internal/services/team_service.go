package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jamil/mission-control-api/internal/dto"
	"github.com/jamil/mission-control-api/internal/models"
	"github.com/jamil/mission-control-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMemberNotFound      = errors.New("team member not found")
	ErrMemberNameEmpty     = errors.New("member name cannot be empty")
	ErrMemberRoleEmpty     = errors.New("member role cannot be empty")
	ErrInvalidMemberStatus = errors.New("invalid member status")
)

// Default leader record inserted by SeedLeader when missing.
const (
	defaultLeaderName        = "Jamil"
	defaultLeaderAvatar      = "https://pbs.twimg.com/profile_images/2010807296595574784/AhvK-9zc_400x400.jpg"
	defaultLeaderDescription = "Team Leader - driving vision and execution."
)

// TeamService provides business logic for team members.
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// ListMembers returns all members, leader first, then by id.
func (s *TeamService) ListMembers() ([]models.TeamMember, error) {
	members, err := s.teamRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

// CreateMember adds a member; omitted status defaults to "working".
func (s *TeamService) CreateMember(req dto.CreateMemberRequest) (*models.TeamMember, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrMemberNameEmpty
	}
	if strings.TrimSpace(req.Role) == "" {
		return nil, ErrMemberRoleEmpty
	}

	status := models.MemberStatusWorking
	if req.Status != "" {
		status = models.MemberStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidMemberStatus
		}
	}

	member := &models.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Status:      status,
		Avatar:      req.Avatar,
		Description: req.Description,
	}

	if err := s.teamRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return member, nil
}

// UpdateMember applies a partial update.
func (s *TeamService) UpdateMember(id uint64, patch dto.MemberPatch) (*models.TeamMember, error) {
	member, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load team member: %w", err)
	}

	updates := map[string]any{}

	if patch.Name.Set {
		if !patch.Name.Valid || strings.TrimSpace(patch.Name.Value) == "" {
			return nil, ErrMemberNameEmpty
		}
		updates["name"] = patch.Name.Value
	}
	if patch.Role.Set {
		if !patch.Role.Valid || strings.TrimSpace(patch.Role.Value) == "" {
			return nil, ErrMemberRoleEmpty
		}
		updates["role"] = patch.Role.Value
	}
	if patch.Status.Set {
		status := models.MemberStatus(patch.Status.Value)
		if !patch.Status.Valid || !status.Valid() {
			return nil, ErrInvalidMemberStatus
		}
		updates["status"] = status
	}
	if patch.Avatar.Set {
		updates["avatar"] = patch.Avatar.Ptr()
	}
	if patch.Description.Set {
		updates["description"] = patch.Description.Ptr()
	}

	if len(updates) == 0 {
		return member, nil
	}

	if err := s.teamRepo.Patch(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	member, err = s.teamRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload team member: %w", err)
	}
	return member, nil
}

// DeleteMember removes a member.
func (s *TeamService) DeleteMember(id uint64) error {
	if err := s.teamRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}

// SeedLeader inserts the default leader record unless a member with that name
// already exists. The existing-or-created member is returned along with
// whether an insert happened, so repeated calls never produce a second copy.
func (s *TeamService) SeedLeader() (*models.TeamMember, bool, error) {
	existing, err := s.teamRepo.FindByName(defaultLeaderName)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up leader: %w", err)
	}

	avatar := defaultLeaderAvatar
	description := defaultLeaderDescription
	member := &models.TeamMember{
		Name:        defaultLeaderName,
		Role:        models.RoleLeader,
		Status:      models.MemberStatusWorking,
		Avatar:      &avatar,
		Description: &description,
	}

	if err := s.teamRepo.Create(member); err != nil {
		return nil, false, fmt.Errorf("failed to seed leader: %w", err)
	}
	return member, true, nil
}
