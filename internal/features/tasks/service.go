package tasks

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

type TaskService struct {
	taskRepository *TaskRepository
	projectService *projects_services.ProjectService
	profileService *users_services.ProfileService
}

func (s *TaskService) ListTasks(projectID uuid.UUID, actor *users_models.User) ([]TaskResponseDTO, error) {
	if err := s.requireMembership(projectID, actor); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.ListTasksByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	assigneeIDs := make([]uuid.UUID, 0, len(tasks))
	for _, task := range tasks {
		if task.AssigneeID != nil {
			assigneeIDs = append(assigneeIDs, *task.AssigneeID)
		}
	}

	identities, err := s.profileService.ResolveIdentities(assigneeIDs)
	if err != nil {
		logger.GetLogger().Warn("assignee resolution failed", "projectId", projectID, "error", err)
		identities = map[uuid.UUID]users_dto.IdentityDTO{}
	}

	result := make([]TaskResponseDTO, 0, len(tasks))
	for i := range tasks {
		identity := users_dto.IdentityDTO{}
		if tasks[i].AssigneeID != nil {
			identity = identities[*tasks[i].AssigneeID]
		}
		result = append(result, toTaskResponse(&tasks[i], identity))
	}

	return result, nil
}

func (s *TaskService) CreateTask(
	projectID uuid.UUID,
	request *CreateTaskRequestDTO,
	actor *users_models.User,
) (*TaskResponseDTO, error) {
	if err := s.requireMembership(projectID, actor); err != nil {
		return nil, err
	}

	if request.AssigneeID != nil && !s.isAssociated(projectID, *request.AssigneeID) {
		return nil, fmt.Errorf("%w: assignee is not a project member", apperrors.ErrValidation)
	}

	priority := TaskPriorityMedium
	if request.Priority != "" {
		priority = TaskPriority(request.Priority)
	}

	task := &ProjectTask{
		ID:          uuid.New(),
		ProjectID:   projectID,
		CreatorID:   actor.ID,
		AssigneeID:  request.AssigneeID,
		Title:       request.Title,
		Description: request.Description,
		Status:      TaskStatusTodo,
		Priority:    priority,
		DueDate:     request.DueDate,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.taskRepository.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	response := toTaskResponse(task, users_dto.IdentityDTO{})
	return &response, nil
}

func (s *TaskService) UpdateTask(
	taskID uuid.UUID,
	request *UpdateTaskRequestDTO,
	actor *users_models.User,
) (*TaskResponseDTO, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMembership(task.ProjectID, actor); err != nil {
		return nil, err
	}

	patch := map[string]any{}
	if request.Title != nil {
		patch["title"] = *request.Title
	}
	if request.Description != nil {
		patch["description"] = *request.Description
	}
	if request.Status != nil {
		patch["status"] = *request.Status
	}
	if request.Priority != nil {
		patch["priority"] = *request.Priority
	}
	if request.AssigneeID != nil {
		if !s.isAssociated(task.ProjectID, *request.AssigneeID) {
			return nil, fmt.Errorf("%w: assignee is not a project member", apperrors.ErrValidation)
		}
		patch["assignee_id"] = *request.AssigneeID
	}
	if request.DueDate != nil {
		patch["due_date"] = *request.DueDate
	}

	if len(patch) > 0 {
		patch["updated_at"] = time.Now().UTC()
		if err := s.taskRepository.UpdateTask(taskID, patch); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
	}

	updated, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	response := toTaskResponse(updated, users_dto.IdentityDTO{})
	return &response, nil
}

// DeleteTask is allowed for the task's author or the project creator.
func (s *TaskService) DeleteTask(taskID uuid.UUID, actor *users_models.User) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}

	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return err
	}

	if task.CreatorID != actor.ID && !s.projectService.IsCreator(task.ProjectID, actor) {
		return fmt.Errorf("%w: cannot delete another member's task", apperrors.ErrForbidden)
	}

	if err := s.taskRepository.DeleteTask(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) OnProjectDeleted(projectID uuid.UUID) error {
	return s.taskRepository.DeleteTasksForProject(projectID)
}

func (s *TaskService) requireMembership(projectID uuid.UUID, actor *users_models.User) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}

	if !s.projectService.IsCreator(projectID, actor) && !s.projectService.IsMember(projectID, actor) {
		return fmt.Errorf("%w: only project members can manage tasks", apperrors.ErrForbidden)
	}

	return nil
}

func (s *TaskService) isAssociated(projectID uuid.UUID, userID uuid.UUID) bool {
	user := &users_models.User{ID: userID}
	return s.projectService.IsCreator(projectID, user) || s.projectService.IsMember(projectID, user)
}

func toTaskResponse(task *ProjectTask, assignee users_dto.IdentityDTO) TaskResponseDTO {
	return TaskResponseDTO{
		ID:                task.ID,
		ProjectID:         task.ProjectID,
		CreatorID:         task.CreatorID,
		AssigneeID:        task.AssigneeID,
		Title:             task.Title,
		Description:       task.Description,
		Status:            task.Status,
		Priority:          task.Priority,
		DueDate:           task.DueDate,
		CreatedAt:         task.CreatedAt,
		UpdatedAt:         task.UpdatedAt,
		AssigneeFirstName: assignee.FirstName,
		AssigneeLastName:  assignee.LastName,
	}
}
