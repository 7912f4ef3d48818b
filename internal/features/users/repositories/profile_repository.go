package users_repositories

import (
	users_models "cofoundry/internal/features/users/models"
	"cofoundry/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository struct{}

func (r *ProfileRepository) CreateProfile(profile *users_models.Profile) error {
	return storage.GetDb().Create(profile).Error
}

func (r *ProfileRepository) CreateProfileDetails(details *users_models.ProfileDetails) error {
	return storage.GetDb().Create(details).Error
}

func (r *ProfileRepository) GetProfileByID(userID uuid.UUID) (*users_models.Profile, error) {
	var profile users_models.Profile

	if err := storage.GetDb().Where("id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &profile, nil
}

func (r *ProfileRepository) GetProfileDetailsByID(userID uuid.UUID) (*users_models.ProfileDetails, error) {
	var details users_models.ProfileDetails

	if err := storage.GetDb().Where("id = ?", userID).First(&details).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &details, nil
}

func (r *ProfileRepository) GetProfilesByIDs(userIDs []uuid.UUID) ([]*users_models.Profile, error) {
	var profiles []*users_models.Profile

	err := storage.GetDb().Where("id IN ?", userIDs).Find(&profiles).Error

	return profiles, err
}

func (r *ProfileRepository) GetProfileDetailsByIDs(userIDs []uuid.UUID) ([]*users_models.ProfileDetails, error) {
	var details []*users_models.ProfileDetails

	err := storage.GetDb().Where("id IN ?", userIDs).Find(&details).Error

	return details, err
}

func (r *ProfileRepository) FindUserIDByEmail(email string) (*uuid.UUID, error) {
	var profile users_models.Profile

	if err := storage.GetDb().Where("email = ?", email).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &profile.ID, nil
}

func (r *ProfileRepository) UpdateProfile(userID uuid.UUID, patch map[string]any) error {
	return storage.GetDb().Model(&users_models.Profile{}).
		Where("id = ?", userID).
		Updates(patch).Error
}

func (r *ProfileRepository) UpdateProfileDetails(userID uuid.UUID, patch map[string]any) error {
	return storage.GetDb().Model(&users_models.ProfileDetails{}).
		Where("id = ?", userID).
		Updates(patch).Error
}
