package ideas

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projects_dto "cofoundry/internal/features/projects/dto"
	projects_services "cofoundry/internal/features/projects/services"
	users_models "cofoundry/internal/features/users/models"
	users_testing "cofoundry/internal/features/users/testing"
	"cofoundry/internal/util/apperrors"
)

func Test_CreateIdea_ByProjectCreator_StartsInToExplore(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)

	idea, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{
		Title:       "Weekly digest emails",
		Description: "keep inactive users engaged",
	}, creator)
	require.NoError(t, err)

	assert.Equal(t, IdeaStatusToExplore, idea.Status)
	assert.Equal(t, 0, idea.Votes)
	assert.Equal(t, creator.ID, idea.CreatorID)
	require.NotNil(t, idea.CreatorFirstName)
	assert.Equal(t, "Test", *idea.CreatorFirstName)
}

func Test_CreateIdea_ByNonMember_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	outsider, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)

	_, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{
		Title: "Outsider idea",
	}, outsider)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func Test_ListIdeas_OrdersByVotesDescending(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)

	low, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "Low"}, creator)
	require.NoError(t, err)
	high, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "High"}, creator)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, GetIdeaService().VoteIdea(high.ID, creator))
	}
	require.NoError(t, GetIdeaService().VoteIdea(low.ID, creator))

	ideas, err := GetIdeaService().ListIdeas(project.ID)
	require.NoError(t, err)
	require.Len(t, ideas, 2)

	assert.Equal(t, high.ID, ideas[0].ID)
	assert.Equal(t, 3, ideas[0].Votes)
	assert.Equal(t, low.ID, ideas[1].ID)
	assert.Equal(t, 1, ideas[1].Votes)
}

func Test_VoteIdea_ByAnyAuthenticatedUser_Increments(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	viewer, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)

	idea, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "Votable"}, creator)
	require.NoError(t, err)

	require.NoError(t, GetIdeaService().VoteIdea(idea.ID, viewer))
	require.NoError(t, GetIdeaService().VoteIdea(idea.ID, viewer))

	ideas, err := GetIdeaService().ListIdeas(project.ID)
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, 2, ideas[0].Votes)
}

func Test_VoteIdea_WithoutActor_ReturnsUnauthenticated(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)

	idea, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "Anon"}, creator)
	require.NoError(t, err)

	assert.ErrorIs(t, GetIdeaService().VoteIdea(idea.ID, nil), apperrors.ErrUnauthenticated)
}

func Test_MoveIdea_ByMember_ChangesColumn(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)

	idea, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "Movable"}, creator)
	require.NoError(t, err)

	moved, err := GetIdeaService().MoveIdea(idea.ID, IdeaStatusInProgress, creator)
	require.NoError(t, err)
	assert.Equal(t, IdeaStatusInProgress, moved.Status)

	moved, err = GetIdeaService().MoveIdea(idea.ID, IdeaStatusToExplore, creator)
	require.NoError(t, err)
	assert.Equal(t, IdeaStatusToExplore, moved.Status)
}

func Test_MoveIdea_WithUnknownStatus_ReturnsValidationError(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)

	idea, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "Stuck"}, creator)
	require.NoError(t, err)

	_, err = GetIdeaService().MoveIdea(idea.ID, IdeaStatus("shipped"), creator)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func Test_MoveIdea_ByNonMember_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	outsider, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)

	idea, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "Guarded"}, creator)
	require.NoError(t, err)

	_, err = GetIdeaService().MoveIdea(idea.ID, IdeaStatusFinalized, outsider)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func Test_DeleteIdea_ByProjectCreator_RemovesAnotherMembersIdea(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	member, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)
	addIdeaTestMember(t, project.ID, member, creator)

	idea, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "Member idea"}, member)
	require.NoError(t, err)

	require.NoError(t, GetIdeaService().DeleteIdea(idea.ID, creator))

	ideas, err := GetIdeaService().ListIdeas(project.ID)
	require.NoError(t, err)
	assert.Empty(t, ideas)
}

func Test_DeleteIdea_ByUnrelatedMember_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	member, _ := users_testing.CreateTestUser(t)
	project := createIdeaTestProject(t, creator)
	addIdeaTestMember(t, project.ID, member, creator)

	idea, err := GetIdeaService().CreateIdea(project.ID, &CreateIdeaRequestDTO{Title: "Creator idea"}, creator)
	require.NoError(t, err)

	err = GetIdeaService().DeleteIdea(idea.ID, member)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func createIdeaTestProject(t *testing.T, creator *users_models.User) *projects_dto.ProjectResponseDTO {
	t.Helper()

	project, err := projects_services.GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       "Idea Board Host",
		Description: "project backing the idea tests",
		Stage:       "idea",
		Category:    "saas",
	}, creator)
	require.NoError(t, err)

	return project
}

func addIdeaTestMember(t *testing.T, projectID uuid.UUID, member *users_models.User, creator *users_models.User) {
	t.Helper()

	err := projects_services.GetMemberService().AddMember(projectID, &projects_dto.AddMemberRequestDTO{
		Email: member.Email,
	}, creator)
	require.NoError(t, err)
}
