package activity

import (
	"github.com/google/uuid"

	"cofoundry/internal/storage"
)

type ActivityRepository struct{}

func (r *ActivityRepository) CreateActivity(entry *Activity) error {
	return storage.GetDb().Create(entry).Error
}

func (r *ActivityRepository) ListActivitiesByUser(userID uuid.UUID, limit int) ([]Activity, error) {
	var entries []Activity

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error

	return entries, err
}

func (r *ActivityRepository) ListActivitiesByProject(projectID uuid.UUID, limit int) ([]Activity, error) {
	var entries []Activity

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error

	return entries, err
}
