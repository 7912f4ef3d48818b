package projects_services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	projects_dto "cofoundry/internal/features/projects/dto"
	projects_enums "cofoundry/internal/features/projects/enums"
	projects_models "cofoundry/internal/features/projects/models"
	projects_repositories "cofoundry/internal/features/projects/repositories"
	users_dto "cofoundry/internal/features/users/dto"
	users_models "cofoundry/internal/features/users/models"
	users_services "cofoundry/internal/features/users/services"
	"cofoundry/internal/util/apperrors"
	"cofoundry/internal/util/logger"
)

type MemberService struct {
	memberRepository  *projects_repositories.MemberRepository
	projectRepository *projects_repositories.ProjectRepository
	profileService    *users_services.ProfileService
}

// ListMembers returns membership rows with best-effort identity data. A
// failed profile lookup degrades the affected rows to bare memberships
// instead of aborting the listing.
func (s *MemberService) ListMembers(projectID uuid.UUID) ([]projects_dto.MemberResponseDTO, error) {
	members, err := s.memberRepository.ListMembersByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		userIDs = append(userIDs, member.UserID)
	}

	identities, err := s.profileService.ResolveIdentities(userIDs)
	if err != nil {
		logger.GetLogger().Warn("member identity resolution failed", "projectId", projectID, "error", err)
		identities = map[uuid.UUID]users_dto.IdentityDTO{}
	}

	result := make([]projects_dto.MemberResponseDTO, 0, len(members))
	for _, member := range members {
		identity := identities[member.UserID]
		result = append(result, projects_dto.MemberResponseDTO{
			ID:        member.ID,
			ProjectID: member.ProjectID,
			UserID:    member.UserID,
			Role:      member.Role,
			CreatedAt: member.CreatedAt,
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
			AvatarURL: identity.AvatarURL,
		})
	}

	return result, nil
}

// AddMember lets the creator add a user directly by email, bypassing the
// application workflow.
func (s *MemberService) AddMember(
	projectID uuid.UUID,
	request *projects_dto.AddMemberRequestDTO,
	actor *users_models.User,
) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return err
	}

	if project.CreatorID != actor.ID {
		return fmt.Errorf("%w: only the project creator can add members", apperrors.ErrForbidden)
	}

	userID, err := s.profileService.FindUserIDByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to look up user by email: %w", err)
	}
	if userID == nil {
		return fmt.Errorf("%w: no user with email %s", apperrors.ErrNotFound, request.Email)
	}

	existing, err := s.memberRepository.GetMember(projectID, *userID)
	if err != nil {
		return fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: user is already a member", apperrors.ErrValidation)
	}

	role := request.Role
	if role == "" {
		role = projects_enums.MemberRoleMember
	}

	member := &projects_models.ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    *userID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.memberRepository.CreateMember(member); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

// RemoveMember is allowed for the creator, or for a member removing
// themself. The creator's own admin row cannot be removed.
func (s *MemberService) RemoveMember(projectID uuid.UUID, userID uuid.UUID, actor *users_models.User) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return err
	}

	if actor.ID != project.CreatorID && actor.ID != userID {
		return fmt.Errorf("%w: cannot remove another member", apperrors.ErrForbidden)
	}

	if userID == project.CreatorID {
		return fmt.Errorf("%w: the project creator cannot be removed", apperrors.ErrValidation)
	}

	member, err := s.memberRepository.GetMember(projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if member == nil {
		return fmt.Errorf("%w: membership", apperrors.ErrNotFound)
	}

	if err := s.memberRepository.DeleteMember(projectID, userID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

// AddApprovedApplicant inserts the membership row created by an approved
// application. Exposed for the application workflow.
func (s *MemberService) AddApprovedApplicant(projectID uuid.UUID, userID uuid.UUID) error {
	member := &projects_models.ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      projects_enums.MemberRoleMember,
		CreatedAt: time.Now().UTC(),
	}

	return s.memberRepository.CreateMember(member)
}
