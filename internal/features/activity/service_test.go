package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projects_dto "cofoundry/internal/features/projects/dto"
	projects_services "cofoundry/internal/features/projects/services"
	users_models "cofoundry/internal/features/users/models"
	users_testing "cofoundry/internal/features/users/testing"
	"cofoundry/internal/util/apperrors"
)

func Test_WriteActivity_IsReadableFromUserAndProjectTrails(t *testing.T) {
	user, _ := users_testing.CreateTestUser(t)
	project := createActivityTestProject(t, user)

	GetActivityService().WriteActivity("joined the beta", &user.ID, &project.ID)

	userEntries, err := GetActivityService().GetUserActivities(user)
	require.NoError(t, err)
	require.NotEmpty(t, userEntries)
	assert.Equal(t, "joined the beta", userEntries[0].Message)

	projectEntries, err := GetActivityService().GetProjectActivities(project.ID, 10, user)
	require.NoError(t, err)
	require.NotEmpty(t, projectEntries)
	assert.Equal(t, "joined the beta", projectEntries[0].Message)
}

func Test_GetUserActivities_ReturnsNewestFirst(t *testing.T) {
	user, _ := users_testing.CreateTestUser(t)

	GetActivityService().WriteActivity("older entry", &user.ID, nil)
	time.Sleep(5 * time.Millisecond)
	GetActivityService().WriteActivity("newer entry", &user.ID, nil)

	entries, err := GetActivityService().GetUserActivities(user)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 2)

	assert.Equal(t, "newer entry", entries[0].Message)
	assert.Equal(t, "older entry", entries[1].Message)
}

func Test_GetUserActivities_WithoutActor_ReturnsUnauthenticated(t *testing.T) {
	_, err := GetActivityService().GetUserActivities(nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func Test_GetProjectActivities_ByNonMember_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	outsider, _ := users_testing.CreateTestUser(t)
	project := createActivityTestProject(t, creator)

	_, err := GetActivityService().GetProjectActivities(project.ID, 10, outsider)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func Test_GetProjectActivities_ClampsInvalidLimit(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createActivityTestProject(t, creator)

	GetActivityService().WriteActivity("scoped entry", nil, &project.ID)

	entries, err := GetActivityService().GetProjectActivities(project.ID, -5, creator)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "scoped entry", entries[0].Message)
}

func createActivityTestProject(t *testing.T, creator *users_models.User) *projects_dto.ProjectResponseDTO {
	t.Helper()

	project, err := projects_services.GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       "Activity Host",
		Description: "project backing the activity tests",
		Stage:       "idea",
		Category:    "saas",
	}, creator)
	require.NoError(t, err)

	return project
}
