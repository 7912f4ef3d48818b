package ideas

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cofoundry/internal/storage"
	"cofoundry/internal/util/apperrors"
)

type IdeaRepository struct{}

func (r *IdeaRepository) CreateIdea(idea *ProjectIdea) error {
	return storage.GetDb().Create(idea).Error
}

func (r *IdeaRepository) GetIdeaByID(ideaID uuid.UUID) (*ProjectIdea, error) {
	var idea ProjectIdea

	if err := storage.GetDb().Where("id = ?", ideaID).First(&idea).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &idea, nil
}

func (r *IdeaRepository) ListIdeasByProject(projectID uuid.UUID) ([]ProjectIdea, error) {
	var ideas []ProjectIdea

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("votes DESC, created_at DESC").
		Find(&ideas).Error

	return ideas, err
}

func (r *IdeaRepository) UpdateIdeaStatus(ideaID uuid.UUID, status IdeaStatus) error {
	return storage.GetDb().
		Model(&ProjectIdea{}).
		Where("id = ?", ideaID).
		Update("status", status).Error
}

// IncrementVotes bumps the counter inside the database so concurrent
// votes never lose an increment.
func (r *IdeaRepository) IncrementVotes(ideaID uuid.UUID) error {
	return storage.GetDb().
		Model(&ProjectIdea{}).
		Where("id = ?", ideaID).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error
}

func (r *IdeaRepository) DeleteIdea(ideaID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", ideaID).
		Delete(&ProjectIdea{}).Error
}

func (r *IdeaRepository) DeleteIdeasForProject(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ?", projectID).
		Delete(&ProjectIdea{}).Error
}
