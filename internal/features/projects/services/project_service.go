package projects_services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	projects_dto "cofoundry/internal/features/projects/dto"
	projects_enums "cofoundry/internal/features/projects/enums"
	projects_interfaces "cofoundry/internal/features/projects/interfaces"
	projects_models "cofoundry/internal/features/projects/models"
	projects_repositories "cofoundry/internal/features/projects/repositories"
	users_interfaces "cofoundry/internal/features/users/interfaces"
	users_models "cofoundry/internal/features/users/models"
	"cofoundry/internal/util/apperrors"
	cache_utils "cofoundry/internal/util/cache"
)

const featuredProjectsLimit = 6

// ApplicationStatusProvider supplies the caller's own application status
// per project. Wired after construction because the applications feature
// depends on this package.
type ApplicationStatusProvider interface {
	GetStatusesByApplicant(userID uuid.UUID) (map[uuid.UUID]string, error)
}

type ProjectService struct {
	projectRepository *projects_repositories.ProjectRepository
	memberRepository  *projects_repositories.MemberRepository
	projectCache      *cache_utils.CacheUtil[projects_models.StartupProject]
	logger            *slog.Logger

	applicationStatuses ApplicationStatusProvider
	deletionListeners   []projects_interfaces.ProjectDeletionListener
	activityWriter      users_interfaces.ActivityWriter

	cacheGroup singleflight.Group
}

func (s *ProjectService) SetApplicationStatusProvider(provider ApplicationStatusProvider) {
	s.applicationStatuses = provider
}

// RegisterDeletionListener appends a cascade hook. Listeners fire in
// registration order, before the project row is removed.
func (s *ProjectService) RegisterDeletionListener(listener projects_interfaces.ProjectDeletionListener) {
	s.deletionListeners = append(s.deletionListeners, listener)
}

func (s *ProjectService) SetActivityWriter(writer users_interfaces.ActivityWriter) {
	s.activityWriter = writer
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	actor *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	if err := validateRolesNeeded(request.RolesNeeded); err != nil {
		return nil, err
	}

	project := &projects_models.StartupProject{
		ID:          uuid.New(),
		CreatorID:   actor.ID,
		Title:       request.Title,
		Description: request.Description,
		Stage:       projects_enums.ProjectStage(request.Stage),
		Category:    request.Category,
		Tags:        normalizeStringSlice(request.Tags),
		RolesNeeded: normalizeStringSlice(request.RolesNeeded),
		FundingGoal: request.FundingGoal,
		ResourceURL: request.ResourceURL,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Second, independent write. If it fails the project exists without
	// its admin member row; the error is surfaced, not rolled back.
	member := &projects_models.ProjectMember{
		ID:        uuid.New(),
		ProjectID: project.ID,
		UserID:    actor.ID,
		Role:      projects_enums.MemberRoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.memberRepository.CreateMember(member); err != nil {
		return nil, fmt.Errorf("project created but admin membership failed: %w", err)
	}

	if s.activityWriter != nil {
		s.activityWriter.WriteActivity(
			fmt.Sprintf("Created project: %s", project.Title),
			&actor.ID,
			&project.ID,
		)
	}

	response := toProjectResponse(project)
	return &response, nil
}

func (s *ProjectService) GetProject(projectID uuid.UUID) (*projects_dto.ProjectResponseDTO, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}

	response := toProjectResponse(project)
	return &response, nil
}

// GetProjectWithCache serves hot project reads from valkey, collapsing
// concurrent misses for the same id into one database query.
func (s *ProjectService) GetProjectWithCache(projectID uuid.UUID) (*projects_dto.ProjectResponseDTO, error) {
	if cached := s.projectCache.Get(projectID.String()); cached != nil {
		response := toProjectResponse(cached)
		return &response, nil
	}

	result, err, _ := s.cacheGroup.Do(projectID.String(), func() (any, error) {
		project, err := s.projectRepository.GetProjectByID(projectID)
		if err != nil {
			return nil, err
		}

		s.projectCache.Set(projectID.String(), project)
		return project, nil
	})
	if err != nil {
		return nil, err
	}

	response := toProjectResponse(result.(*projects_models.StartupProject))
	return &response, nil
}

func (s *ProjectService) GetProjectsByIDs(projectIDs []uuid.UUID) (map[uuid.UUID]projects_dto.ProjectResponseDTO, error) {
	projects, err := s.projectRepository.GetProjectsByIDs(projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	result := make(map[uuid.UUID]projects_dto.ProjectResponseDTO, len(projects))
	for i := range projects {
		result[projects[i].ID] = toProjectResponse(&projects[i])
	}

	return result, nil
}

func (s *ProjectService) ListProjects() ([]projects_dto.ProjectResponseDTO, error) {
	projects, err := s.projectRepository.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return toProjectResponses(projects), nil
}

func (s *ProjectService) ListFeaturedProjects(limit int) ([]projects_dto.ProjectResponseDTO, error) {
	if limit <= 0 || limit > featuredProjectsLimit {
		limit = featuredProjectsLimit
	}

	projects, err := s.projectRepository.ListFeaturedProjects(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured projects: %w", err)
	}

	return toProjectResponses(projects), nil
}

// ListWithApplicationStatus joins the full project list with the actor's
// own application per project via one map lookup per row. Anonymous
// callers get nil statuses throughout.
func (s *ProjectService) ListWithApplicationStatus(
	actor *users_models.User,
) ([]projects_dto.ProjectWithApplicationStatusDTO, error) {
	projects, err := s.projectRepository.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var statuses map[uuid.UUID]string
	if actor != nil && s.applicationStatuses != nil {
		statuses, err = s.applicationStatuses.GetStatusesByApplicant(actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load application statuses: %w", err)
		}
	}

	result := make([]projects_dto.ProjectWithApplicationStatusDTO, 0, len(projects))
	for i := range projects {
		row := projects_dto.ProjectWithApplicationStatusDTO{
			ProjectResponseDTO: toProjectResponse(&projects[i]),
		}
		if status, ok := statuses[projects[i].ID]; ok {
			row.ApplicationStatus = &status
		}
		result = append(result, row)
	}

	return result, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	actor *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}

	if project.CreatorID != actor.ID {
		return nil, fmt.Errorf("%w: only the project creator can update it", apperrors.ErrForbidden)
	}

	if request.RolesNeeded != nil {
		if err := validateRolesNeeded(request.RolesNeeded); err != nil {
			return nil, err
		}
	}

	patch, err := buildProjectPatch(request)
	if err != nil {
		return nil, err
	}

	if len(patch) > 0 {
		patch["updated_at"] = time.Now().UTC()
		if err := s.projectRepository.UpdateProject(projectID, patch); err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
		s.projectCache.Invalidate(projectID.String())
	}

	return s.GetProject(projectID)
}

func (s *ProjectService) DeleteProject(projectID uuid.UUID, actor *users_models.User) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return err
	}

	if project.CreatorID != actor.ID {
		return fmt.Errorf("%w: only the project creator can delete it", apperrors.ErrForbidden)
	}

	// Cascade order: members first, then each dependent feature in
	// registration order, project row last. No rollback on partial
	// failure; the error is surfaced and remaining rows stay behind.
	if err := s.memberRepository.DeleteAllMembersForProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project members: %w", err)
	}

	for _, listener := range s.deletionListeners {
		if err := listener.OnProjectDeleted(projectID); err != nil {
			return fmt.Errorf("failed to cascade project deletion: %w", err)
		}
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.projectCache.Invalidate(projectID.String())

	if s.activityWriter != nil {
		s.activityWriter.WriteActivity(
			fmt.Sprintf("Deleted project: %s", project.Title),
			&actor.ID,
			nil,
		)
	}

	return nil
}

// IsCreator reports whether actor owns the project. Lookup failures and
// anonymous actors yield false, never an error.
func (s *ProjectService) IsCreator(projectID uuid.UUID, actor *users_models.User) bool {
	if actor == nil {
		return false
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		s.logger.Warn("creator check failed", "projectId", projectID, "error", err)
		return false
	}

	return project.CreatorID == actor.ID
}

// IsMember mirrors IsCreator's fail-closed behavior.
func (s *ProjectService) IsMember(projectID uuid.UUID, actor *users_models.User) bool {
	if actor == nil {
		return false
	}

	member, err := s.memberRepository.GetMember(projectID, actor.ID)
	if err != nil {
		s.logger.Warn("membership check failed", "projectId", projectID, "error", err)
		return false
	}

	return member != nil
}

func validateRolesNeeded(roles []string) error {
	seen := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		if _, duplicate := seen[role]; duplicate {
			return fmt.Errorf("%w: duplicate role in rolesNeeded: %s", apperrors.ErrValidation, role)
		}
		seen[role] = struct{}{}
	}
	return nil
}

func normalizeStringSlice(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func buildProjectPatch(request *projects_dto.UpdateProjectRequestDTO) (map[string]any, error) {
	patch := map[string]any{}

	if request.Title != nil {
		patch["title"] = *request.Title
	}
	if request.Description != nil {
		patch["description"] = *request.Description
	}
	if request.Stage != nil {
		patch["stage"] = *request.Stage
	}
	if request.Category != nil {
		patch["category"] = *request.Category
	}
	if request.FundingGoal != nil {
		patch["funding_goal"] = *request.FundingGoal
	}
	if request.ResourceURL != nil {
		patch["resource_url"] = *request.ResourceURL
	}

	// Map updates bypass gorm hooks, so slice fields are serialized here.
	if request.Tags != nil {
		raw, err := encodeStringSlice(request.Tags)
		if err != nil {
			return nil, err
		}
		patch["tags"] = raw
	}
	if request.RolesNeeded != nil {
		raw, err := encodeStringSlice(request.RolesNeeded)
		if err != nil {
			return nil, err
		}
		patch["roles_needed"] = raw
	}

	return patch, nil
}

func encodeStringSlice(values []string) (string, error) {
	raw, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode list field: %w", err)
	}
	return string(raw), nil
}

func toProjectResponse(project *projects_models.StartupProject) projects_dto.ProjectResponseDTO {
	return projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		CreatorID:   project.CreatorID,
		Title:       project.Title,
		Description: project.Description,
		Stage:       project.Stage,
		Category:    project.Category,
		Tags:        normalizeStringSlice(project.Tags),
		RolesNeeded: normalizeStringSlice(project.RolesNeeded),
		FundingGoal: project.FundingGoal,
		ResourceURL: project.ResourceURL,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func toProjectResponses(projects []projects_models.StartupProject) []projects_dto.ProjectResponseDTO {
	responses := make([]projects_dto.ProjectResponseDTO, 0, len(projects))
	for i := range projects {
		responses = append(responses, toProjectResponse(&projects[i]))
	}
	return responses
}
