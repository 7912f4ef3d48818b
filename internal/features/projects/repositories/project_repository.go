package projects_repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	projects_models "cofoundry/internal/features/projects/models"
	"cofoundry/internal/storage"
	"cofoundry/internal/util/apperrors"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.StartupProject) error {
	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.StartupProject, error) {
	var project projects_models.StartupProject

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) ListProjects() ([]projects_models.StartupProject, error) {
	var projects []projects_models.StartupProject

	err := storage.GetDb().
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) ListFeaturedProjects(limit int) ([]projects_models.StartupProject, error) {
	var projects []projects_models.StartupProject

	err := storage.GetDb().
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) GetProjectsByIDs(projectIDs []uuid.UUID) ([]projects_models.StartupProject, error) {
	var projects []projects_models.StartupProject

	if len(projectIDs) == 0 {
		return projects, nil
	}

	err := storage.GetDb().
		Where("id IN ?", projectIDs).
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) UpdateProject(projectID uuid.UUID, patch map[string]any) error {
	return storage.GetDb().
		Model(&projects_models.StartupProject{}).
		Where("id = ?", projectID).
		Updates(patch).Error
}

func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", projectID).
		Delete(&projects_models.StartupProject{}).Error
}
