package tasks

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cofoundry/internal/storage"
	"cofoundry/internal/util/apperrors"
)

type TaskRepository struct{}

func (r *TaskRepository) CreateTask(task *ProjectTask) error {
	return storage.GetDb().Create(task).Error
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*ProjectTask, error) {
	var task ProjectTask

	if err := storage.GetDb().Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) ListTasksByProject(projectID uuid.UUID) ([]ProjectTask, error) {
	var tasks []ProjectTask

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) UpdateTask(taskID uuid.UUID, patch map[string]any) error {
	return storage.GetDb().
		Model(&ProjectTask{}).
		Where("id = ?", taskID).
		Updates(patch).Error
}

func (r *TaskRepository) DeleteTask(taskID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", taskID).
		Delete(&ProjectTask{}).Error
}

func (r *TaskRepository) DeleteTasksForProject(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ?", projectID).
		Delete(&ProjectTask{}).Error
}
