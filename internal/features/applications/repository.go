package applications

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cofoundry/internal/storage"
	"cofoundry/internal/util/apperrors"
)

type ApplicationRepository struct{}

func (r *ApplicationRepository) CreateApplication(application *ProjectApplication) error {
	return storage.GetDb().Create(application).Error
}

func (r *ApplicationRepository) GetApplicationByID(applicationID uuid.UUID) (*ProjectApplication, error) {
	var application ProjectApplication

	if err := storage.GetDb().Where("id = ?", applicationID).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &application, nil
}

func (r *ApplicationRepository) ListApplicationsByProject(projectID uuid.UUID) ([]ProjectApplication, error) {
	var applications []ProjectApplication

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&applications).Error

	return applications, err
}

func (r *ApplicationRepository) ListApplicationsByApplicant(applicantID uuid.UUID) ([]ProjectApplication, error) {
	var applications []ProjectApplication

	err := storage.GetDb().
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error

	return applications, err
}

func (r *ApplicationRepository) UpdateApplicationStatus(applicationID uuid.UUID, status ApplicationStatus) error {
	return storage.GetDb().
		Model(&ProjectApplication{}).
		Where("id = ?", applicationID).
		Update("status", status).Error
}

func (r *ApplicationRepository) DeleteApplicationsForProject(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ?", projectID).
		Delete(&ProjectApplication{}).Error
}

func (r *ApplicationRepository) CountApplicationsForProject(projectID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&ProjectApplication{}).
		Where("project_id = ?", projectID).
		Count(&count).Error

	return count, err
}
