package projects_testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	projects_dto "cofoundry/internal/features/projects/dto"
	projects_services "cofoundry/internal/features/projects/services"
	users_models "cofoundry/internal/features/users/models"
)

// CreateTestProject creates a project owned by the given user with
// sensible defaults.
func CreateTestProject(t *testing.T, creator *users_models.User) *projects_dto.ProjectResponseDTO {
	t.Helper()

	project, err := projects_services.GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       "Test Startup",
		Description: "A startup created from a test",
		Stage:       "idea",
		Category:    "saas",
		Tags:        []string{"go", "backend"},
		RolesNeeded: []string{"designer", "marketer"},
		FundingGoal: 10000,
	}, creator)
	require.NoError(t, err)
	require.NotNil(t, project)

	return project
}
