package activity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	projects_services "cofoundry/internal/features/projects/services"
	users_models "cofoundry/internal/features/users/models"
	"cofoundry/internal/util/apperrors"
	"cofoundry/internal/util/logger"
)

const defaultActivityLimit = 100

type ActivityService struct {
	activityRepository *ActivityRepository
	projectService     *projects_services.ProjectService
}

// WriteActivity records an audit entry. Failures are logged, never
// propagated; the trail is advisory and must not break the operation
// that produced it.
func (s *ActivityService) WriteActivity(message string, userID *uuid.UUID, projectID *uuid.UUID) {
	entry := &Activity{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: projectID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.activityRepository.CreateActivity(entry); err != nil {
		logger.GetLogger().Error("failed to write activity", "message", message, "error", err)
	}
}

func (s *ActivityService) GetUserActivities(actor *users_models.User) ([]Activity, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	entries, err := s.activityRepository.ListActivitiesByUser(actor.ID, defaultActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return entries, nil
}

func (s *ActivityService) GetProjectActivities(projectID uuid.UUID, limit int, actor *users_models.User) ([]Activity, error) {
	if !s.projectService.IsCreator(projectID, actor) && !s.projectService.IsMember(projectID, actor) {
		return nil, fmt.Errorf("%w: only project members can read the project trail", apperrors.ErrForbidden)
	}

	if limit <= 0 || limit > defaultActivityLimit {
		limit = defaultActivityLimit
	}

	entries, err := s.activityRepository.ListActivitiesByProject(projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list project activities: %w", err)
	}

	return entries, nil
}
