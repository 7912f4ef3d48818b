package projects_controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cofoundry/internal/features/applications"
	"cofoundry/internal/features/chat"
	"cofoundry/internal/features/ideas"
	projects_dto "cofoundry/internal/features/projects/dto"
	projects_enums "cofoundry/internal/features/projects/enums"
	projects_models "cofoundry/internal/features/projects/models"
	projects_testing "cofoundry/internal/features/projects/testing"
	"cofoundry/internal/features/tasks"
	users_testing "cofoundry/internal/features/users/testing"
	"cofoundry/internal/storage"
	test_utils "cofoundry/internal/util/testing"
)

func Test_CreateProjectViaAPI_ReturnsCreatedProject(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())

	_, token := users_testing.CreateTestUser(t)

	request := projects_dto.CreateProjectRequestDTO{
		Title:       "API Startup",
		Description: "created through the HTTP layer",
		Stage:       "mvp",
		Category:    "fintech",
		Tags:        []string{"go"},
		RolesNeeded: []string{"designer"},
	}

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "API Startup", response.Title)
	assert.Equal(t, projects_enums.ProjectStage("mvp"), response.Stage)
	assert.Equal(t, []string{"go"}, response.Tags)
}

func Test_CreateProjectViaAPI_WithInvalidStage_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())

	_, token := users_testing.CreateTestUser(t)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+token,
		map[string]any{
			"title":       "Bad Stage",
			"description": "x",
			"stage":       "unicorn",
			"category":    "saas",
		},
		http.StatusBadRequest,
	)
}

func Test_UpdateProjectViaAPI_ByNonCreator_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())

	creator, _ := users_testing.CreateTestUser(t)
	_, otherToken := users_testing.CreateTestUser(t)
	project := projects_testing.CreateTestProject(t, creator)

	newTitle := "Hijacked"
	response := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodPut,
		URL:            "/api/v1/projects/" + project.ID.String(),
		AuthToken:      "Bearer " + otherToken,
		Body:           projects_dto.UpdateProjectRequestDTO{Title: &newTitle},
		ExpectedStatus: http.StatusForbidden,
	})
	require.NotNil(t, response)
}

func Test_GetProjectViaAPI_WithoutToken_ReturnsProject(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())

	creator, _ := users_testing.CreateTestUser(t)
	project := projects_testing.CreateTestProject(t, creator)

	var response projects_dto.ProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"",
		http.StatusOK,
		&response,
	)

	assert.Equal(t, project.ID, response.ID)
}

func Test_GetPermissionsViaAPI_ReflectsCreatorRole(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())

	creator, creatorToken := users_testing.CreateTestUser(t)
	_, outsiderToken := users_testing.CreateTestUser(t)
	project := projects_testing.CreateTestProject(t, creator)

	var creatorPermissions map[string]bool
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/permissions",
		"Bearer "+creatorToken,
		http.StatusOK,
		&creatorPermissions,
	)
	assert.True(t, creatorPermissions["isCreator"])
	assert.True(t, creatorPermissions["isMember"])

	var outsiderPermissions map[string]bool
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/permissions",
		"Bearer "+outsiderToken,
		http.StatusOK,
		&outsiderPermissions,
	)
	assert.False(t, outsiderPermissions["isCreator"])
	assert.False(t, outsiderPermissions["isMember"])
}

func Test_AddAndRemoveMemberViaAPI_UpdatesMemberList(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())

	creator, creatorToken := users_testing.CreateTestUser(t)
	member, _ := users_testing.CreateTestUser(t)
	project := projects_testing.CreateTestProject(t, creator)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+creatorToken,
		projects_dto.AddMemberRequestDTO{Email: member.Email, Role: "designer"},
		http.StatusCreated,
	)

	var members projects_dto.MembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"",
		http.StatusOK,
		&members,
	)
	require.Len(t, members.Members, 2)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members/"+member.ID.String(),
		"Bearer "+creatorToken,
		http.StatusOK,
	)

	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"",
		http.StatusOK,
		&members,
	)
	require.Len(t, members.Members, 1)
}

func Test_DeleteProjectViaAPI_CascadesAcrossAllProjectData(t *testing.T) {
	applications.SetupDependencies()
	ideas.SetupDependencies()
	chat.SetupDependencies()
	tasks.SetupDependencies()

	router := projects_testing.CreateTestRouter(GetProjectController())

	creator, creatorToken := users_testing.CreateTestUser(t)
	applicant, _ := users_testing.CreateTestUser(t)
	project := projects_testing.CreateTestProject(t, creator)

	_, err := applications.GetApplicationService().Submit(project.ID, &applications.SubmitApplicationRequestDTO{
		Introduction: "hi",
		Experience:   "some",
		Motivation:   "much",
	}, applicant)
	require.NoError(t, err)

	_, err = ideas.GetIdeaService().CreateIdea(project.ID, &ideas.CreateIdeaRequestDTO{
		Title: "First idea",
	}, creator)
	require.NoError(t, err)

	_, err = chat.GetChatService().SendMessage(project.ID, &chat.SendMessageRequestDTO{
		Content: "hello team",
	}, creator)
	require.NoError(t, err)

	_, err = tasks.GetTaskService().CreateTask(project.ID, &tasks.CreateTaskRequestDTO{
		Title: "Ship it",
	}, creator)
	require.NoError(t, err)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+creatorToken,
		http.StatusOK,
	)

	db := storage.GetDb()

	var projectCount int64
	require.NoError(t, db.Model(&projects_models.StartupProject{}).
		Where("id = ?", project.ID).Count(&projectCount).Error)
	assert.Zero(t, projectCount)

	var memberCount int64
	require.NoError(t, db.Model(&projects_models.ProjectMember{}).
		Where("project_id = ?", project.ID).Count(&memberCount).Error)
	assert.Zero(t, memberCount)

	var applicationCount int64
	require.NoError(t, db.Model(&applications.ProjectApplication{}).
		Where("project_id = ?", project.ID).Count(&applicationCount).Error)
	assert.Zero(t, applicationCount)

	var ideaCount int64
	require.NoError(t, db.Model(&ideas.ProjectIdea{}).
		Where("project_id = ?", project.ID).Count(&ideaCount).Error)
	assert.Zero(t, ideaCount)

	var messageCount int64
	require.NoError(t, db.Model(&chat.ProjectChatMessage{}).
		Where("project_id = ?", project.ID).Count(&messageCount).Error)
	assert.Zero(t, messageCount)

	var taskCount int64
	require.NoError(t, db.Model(&tasks.ProjectTask{}).
		Where("project_id = ?", project.ID).Count(&taskCount).Error)
	assert.Zero(t, taskCount)
}
