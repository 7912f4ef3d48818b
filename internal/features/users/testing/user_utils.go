package users_testing

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	users_dto "cofoundry/internal/features/users/dto"
	users_models "cofoundry/internal/features/users/models"
	users_services "cofoundry/internal/features/users/services"
)

const testPassword = "test-password-123"

// CreateTestUser registers a user with a unique email and signs it in,
// returning the model and a valid access token.
func CreateTestUser(t *testing.T) (*users_models.User, string) {
	t.Helper()

	email := fmt.Sprintf("user-%s@example.com", uuid.New().String()[:8])
	firstName := "Test"
	lastName := "User"

	err := users_services.GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:     email,
		Password:  testPassword,
		FirstName: firstName,
		LastName:  lastName,
	})
	require.NoError(t, err)

	response, err := users_services.GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)

	user, err := users_services.GetUserService().GetUserByID(response.UserID)
	require.NoError(t, err)

	return user, response.Token
}
