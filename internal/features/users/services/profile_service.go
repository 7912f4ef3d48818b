package users_services

import (
	"fmt"

	"github.com/google/uuid"

	users_dto "cofoundry/internal/features/users/dto"
	users_repositories "cofoundry/internal/features/users/repositories"
)

type ProfileService struct {
	profileRepository *users_repositories.ProfileRepository
}

func (s *ProfileService) GetProfile(userID uuid.UUID) (*users_dto.UserProfileResponseDTO, error) {
	profile, err := s.profileRepository.GetProfileByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	details, err := s.profileRepository.GetProfileDetailsByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile details: %w", err)
	}

	response := &users_dto.UserProfileResponseDTO{ID: userID}
	if profile != nil {
		response.Email = profile.Email
		response.AvatarURL = profile.AvatarURL
	}
	if details != nil {
		response.FirstName = details.FirstName
		response.LastName = details.LastName
	}

	return response, nil
}

func (s *ProfileService) UpdateProfile(userID uuid.UUID, request *users_dto.UpdateProfileRequestDTO) error {
	if request.AvatarURL != nil {
		err := s.profileRepository.UpdateProfile(userID, map[string]any{"avatar_url": *request.AvatarURL})
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
	}

	detailsPatch := map[string]any{}
	if request.FirstName != nil {
		detailsPatch["first_name"] = *request.FirstName
	}
	if request.LastName != nil {
		detailsPatch["last_name"] = *request.LastName
	}

	if len(detailsPatch) > 0 {
		if err := s.profileRepository.UpdateProfileDetails(userID, detailsPatch); err != nil {
			return fmt.Errorf("failed to update profile details: %w", err)
		}
	}

	return nil
}

// ResolveIdentities fetches display data for a set of users in two queries
// and merges the rows by id. Either table may miss a row; the identity then
// carries only what was found. A missing identity altogether is represented
// by an entry with all-nil fields so callers can index without checking.
func (s *ProfileService) ResolveIdentities(userIDs []uuid.UUID) (map[uuid.UUID]users_dto.IdentityDTO, error) {
	identities := make(map[uuid.UUID]users_dto.IdentityDTO, len(userIDs))
	if len(userIDs) == 0 {
		return identities, nil
	}

	for _, id := range userIDs {
		identities[id] = users_dto.IdentityDTO{}
	}

	profiles, err := s.profileRepository.GetProfilesByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	for _, profile := range profiles {
		identity := identities[profile.ID]
		identity.AvatarURL = profile.AvatarURL
		identities[profile.ID] = identity
	}

	details, err := s.profileRepository.GetProfileDetailsByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile details: %w", err)
	}
	for _, detail := range details {
		identity := identities[detail.ID]
		identity.FirstName = detail.FirstName
		identity.LastName = detail.LastName
		identities[detail.ID] = identity
	}

	return identities, nil
}

func (s *ProfileService) ResolveIdentity(userID uuid.UUID) (users_dto.IdentityDTO, error) {
	identities, err := s.ResolveIdentities([]uuid.UUID{userID})
	if err != nil {
		return users_dto.IdentityDTO{}, err
	}
	return identities[userID], nil
}

func (s *ProfileService) FindUserIDByEmail(email string) (*uuid.UUID, error) {
	return s.profileRepository.FindUserIDByEmail(email)
}
