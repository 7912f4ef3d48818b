package projects_repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	projects_models "cofoundry/internal/features/projects/models"
	"cofoundry/internal/storage"
)

type MemberRepository struct{}

func (r *MemberRepository) CreateMember(member *projects_models.ProjectMember) error {
	return storage.GetDb().Create(member).Error
}

func (r *MemberRepository) GetMember(projectID uuid.UUID, userID uuid.UUID) (*projects_models.ProjectMember, error) {
	var member projects_models.ProjectMember

	err := storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (r *MemberRepository) ListMembersByProject(projectID uuid.UUID) ([]projects_models.ProjectMember, error) {
	var members []projects_models.ProjectMember

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&members).Error

	return members, err
}

func (r *MemberRepository) DeleteMember(projectID uuid.UUID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&projects_models.ProjectMember{}).Error
}

func (r *MemberRepository) DeleteAllMembersForProject(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ?", projectID).
		Delete(&projects_models.ProjectMember{}).Error
}
