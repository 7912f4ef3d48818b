package ideas

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	projects_services "cofoundry/internal/features/projects/services"
	users_dto "cofoundry/internal/features/users/dto"
	users_models "cofoundry/internal/features/users/models"
	users_services "cofoundry/internal/features/users/services"
	"cofoundry/internal/util/apperrors"
	"cofoundry/internal/util/logger"
)

type IdeaService struct {
	ideaRepository *IdeaRepository
	projectService *projects_services.ProjectService
	profileService *users_services.ProfileService
}

// ListIdeas returns the project's board ordered by votes, with creator
// identities resolved in bulk and degraded to nil on lookup failure.
func (s *IdeaService) ListIdeas(projectID uuid.UUID) ([]IdeaResponseDTO, error) {
	ideas, err := s.ideaRepository.ListIdeasByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	creatorIDs := make([]uuid.UUID, 0, len(ideas))
	for _, idea := range ideas {
		creatorIDs = append(creatorIDs, idea.CreatorID)
	}

	identities, err := s.profileService.ResolveIdentities(creatorIDs)
	if err != nil {
		logger.GetLogger().Warn("idea creator resolution failed", "projectId", projectID, "error", err)
		identities = map[uuid.UUID]users_dto.IdentityDTO{}
	}

	result := make([]IdeaResponseDTO, 0, len(ideas))
	for i := range ideas {
		result = append(result, toIdeaResponse(&ideas[i], identities[ideas[i].CreatorID]))
	}

	return result, nil
}

// CreateIdea requires project association: creator or member.
func (s *IdeaService) CreateIdea(
	projectID uuid.UUID,
	request *CreateIdeaRequestDTO,
	actor *users_models.User,
) (*IdeaResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	if _, err := s.projectService.GetProject(projectID); err != nil {
		return nil, err
	}

	if !s.projectService.IsCreator(projectID, actor) && !s.projectService.IsMember(projectID, actor) {
		return nil, fmt.Errorf("%w: only project members can add ideas", apperrors.ErrForbidden)
	}

	idea := &ProjectIdea{
		ID:          uuid.New(),
		ProjectID:   projectID,
		CreatorID:   actor.ID,
		Title:       request.Title,
		Description: request.Description,
		Status:      IdeaStatusToExplore,
		Votes:       0,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.ideaRepository.CreateIdea(idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	identity, err := s.profileService.ResolveIdentity(actor.ID)
	if err != nil {
		identity = users_dto.IdentityDTO{}
	}

	response := toIdeaResponse(idea, identity)
	return &response, nil
}

// MoveIdea changes the board column. Any column-to-column move is
// allowed; the stage labels carry no enforced ordering.
func (s *IdeaService) MoveIdea(ideaID uuid.UUID, status IdeaStatus, actor *users_models.User) (*IdeaResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown idea status: %s", apperrors.ErrValidation, status)
	}

	idea, err := s.ideaRepository.GetIdeaByID(ideaID)
	if err != nil {
		return nil, err
	}

	if !s.projectService.IsCreator(idea.ProjectID, actor) && !s.projectService.IsMember(idea.ProjectID, actor) {
		return nil, fmt.Errorf("%w: only project members can move ideas", apperrors.ErrForbidden)
	}

	if err := s.ideaRepository.UpdateIdeaStatus(ideaID, status); err != nil {
		return nil, fmt.Errorf("failed to move idea: %w", err)
	}

	idea.Status = status
	idea.UpdatedAt = time.Now().UTC()

	response := toIdeaResponse(idea, users_dto.IdentityDTO{})
	return &response, nil
}

// VoteIdea increments the vote counter. Votes are never decremented and
// any authenticated viewer may vote, repeatedly.
func (s *IdeaService) VoteIdea(ideaID uuid.UUID, actor *users_models.User) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}

	if _, err := s.ideaRepository.GetIdeaByID(ideaID); err != nil {
		return err
	}

	if err := s.ideaRepository.IncrementVotes(ideaID); err != nil {
		return fmt.Errorf("failed to vote: %w", err)
	}

	return nil
}

// DeleteIdea is allowed for the idea's author or the project creator.
func (s *IdeaService) DeleteIdea(ideaID uuid.UUID, actor *users_models.User) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}

	idea, err := s.ideaRepository.GetIdeaByID(ideaID)
	if err != nil {
		return err
	}

	if idea.CreatorID != actor.ID && !s.projectService.IsCreator(idea.ProjectID, actor) {
		return fmt.Errorf("%w: cannot delete another member's idea", apperrors.ErrForbidden)
	}

	if err := s.ideaRepository.DeleteIdea(ideaID); err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	return nil
}

func (s *IdeaService) OnProjectDeleted(projectID uuid.UUID) error {
	return s.ideaRepository.DeleteIdeasForProject(projectID)
}

func toIdeaResponse(idea *ProjectIdea, identity users_dto.IdentityDTO) IdeaResponseDTO {
	return IdeaResponseDTO{
		ID:               idea.ID,
		ProjectID:        idea.ProjectID,
		CreatorID:        idea.CreatorID,
		Title:            idea.Title,
		Description:      idea.Description,
		Status:           idea.Status,
		Votes:            idea.Votes,
		CreatedAt:        idea.CreatedAt,
		UpdatedAt:        idea.UpdatedAt,
		CreatorFirstName: identity.FirstName,
		CreatorLastName:  identity.LastName,
		CreatorAvatarURL: identity.AvatarURL,
	}
}
