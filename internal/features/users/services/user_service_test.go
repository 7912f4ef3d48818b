package users_services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	users_dto "cofoundry/internal/features/users/dto"
)

func Test_SignUp_WithNewEmail_CreatesActiveUserWithProfile(t *testing.T) {
	email := uniqueTestEmail()

	err := GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:     email,
		Password:  "a-long-password",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	user, err := GetUserService().GetUserByEmail(email)
	require.NoError(t, err)
	require.NotNil(t, user)

	profile, err := GetProfileService().GetProfile(user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "Ada", *profile.FirstName)
	require.NotNil(t, profile.LastName)
	assert.Equal(t, "Lovelace", *profile.LastName)
}

func Test_SignUp_WithExistingEmail_ReturnsError(t *testing.T) {
	email := uniqueTestEmail()
	request := &users_dto.SignUpRequestDTO{Email: email, Password: "a-long-password"}

	require.NoError(t, GetUserService().SignUp(request))

	err := GetUserService().SignUp(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func Test_SignIn_WithCorrectPassword_ReturnsWorkingToken(t *testing.T) {
	email := uniqueTestEmail()
	require.NoError(t, GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "a-long-password",
	}))

	response, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "a-long-password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)

	user, err := GetUserService().GetUserFromToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, response.UserID, user.ID)
	assert.Equal(t, email, user.Email)
}

func Test_SignIn_WithWrongPassword_ReturnsError(t *testing.T) {
	email := uniqueTestEmail()
	require.NoError(t, GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "a-long-password",
	}))

	_, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "not-the-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is incorrect")
}

func Test_SignIn_WithUnknownEmail_ReturnsError(t *testing.T) {
	_, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    uniqueTestEmail(),
		Password: "whatever-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func Test_GetUserFromToken_WithGarbageToken_ReturnsError(t *testing.T) {
	_, err := GetUserService().GetUserFromToken("not-a-jwt")
	require.Error(t, err)
}

func Test_ChangeUserPassword_InvalidatesOldTokens(t *testing.T) {
	email := uniqueTestEmail()
	require.NoError(t, GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "a-long-password",
	}))

	response, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "a-long-password",
	})
	require.NoError(t, err)

	require.NoError(t, GetUserService().ChangeUserPassword(response.UserID, "a-newer-password"))

	_, err = GetUserService().GetUserFromToken(response.Token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password has been changed")

	fresh, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "a-newer-password",
	})
	require.NoError(t, err)

	user, err := GetUserService().GetUserFromToken(fresh.Token)
	require.NoError(t, err)
	assert.Equal(t, response.UserID, user.ID)
}

func Test_UpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	email := uniqueTestEmail()
	require.NoError(t, GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:     email,
		Password:  "a-long-password",
		FirstName: "Grace",
		LastName:  "Hopper",
	}))

	user, err := GetUserService().GetUserByEmail(email)
	require.NoError(t, err)

	avatarURL := "https://cdn.example.com/avatar.png"
	require.NoError(t, GetProfileService().UpdateProfile(user.ID, &users_dto.UpdateProfileRequestDTO{
		AvatarURL: &avatarURL,
	}))

	profile, err := GetProfileService().GetProfile(user.ID)
	require.NoError(t, err)

	require.NotNil(t, profile.AvatarURL)
	assert.Equal(t, avatarURL, *profile.AvatarURL)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "Grace", *profile.FirstName)
}

func Test_ResolveIdentities_ReturnsNilFieldsForUnknownUsers(t *testing.T) {
	unknownID := uuid.New()

	identities, err := GetProfileService().ResolveIdentities([]uuid.UUID{unknownID})
	require.NoError(t, err)

	identity, ok := identities[unknownID]
	require.True(t, ok)
	assert.Nil(t, identity.FirstName)
	assert.Nil(t, identity.LastName)
	assert.Nil(t, identity.AvatarURL)
}

func uniqueTestEmail() string {
	return fmt.Sprintf("svc-%s@example.com", uuid.NewString()[:8])
}
