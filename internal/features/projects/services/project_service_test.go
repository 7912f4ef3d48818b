package projects_services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projects_dto "cofoundry/internal/features/projects/dto"
	projects_enums "cofoundry/internal/features/projects/enums"
	users_models "cofoundry/internal/features/users/models"
	users_testing "cofoundry/internal/features/users/testing"
	"cofoundry/internal/util/apperrors"
)

func Test_CreateProject_CreatorBecomesAdminMember(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)

	project, err := GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       "Fintech Startup",
		Description: "Payments for freelancers",
		Stage:       "idea",
		Category:    "fintech",
		Tags:        []string{"payments"},
		RolesNeeded: []string{"designer"},
	}, creator)
	require.NoError(t, err)

	assert.Equal(t, creator.ID, project.CreatorID)
	assert.True(t, GetProjectService().IsCreator(project.ID, creator))
	assert.True(t, GetProjectService().IsMember(project.ID, creator))

	members, err := GetMemberService().ListMembers(project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, creator.ID, members[0].UserID)
	assert.Equal(t, projects_enums.MemberRoleAdmin, members[0].Role)
}

func Test_CreateProject_WithDuplicateRolesNeeded_ReturnsValidationError(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)

	_, err := GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       "Dup Roles",
		Description: "x",
		Stage:       "idea",
		Category:    "saas",
		RolesNeeded: []string{"designer", "designer"},
	}, creator)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func Test_CreateProject_WithoutActor_ReturnsUnauthenticated(t *testing.T) {
	_, err := GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       "Anonymous",
		Description: "x",
		Stage:       "idea",
		Category:    "saas",
	}, nil)

	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func Test_UpdateProject_ByNonCreator_ReturnsForbiddenWithoutChange(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	other, _ := users_testing.CreateTestUser(t)

	project := createProjectForTest(t, creator, "Original Title")

	newTitle := "Hijacked"
	_, err := GetProjectService().UpdateProject(project.ID, &projects_dto.UpdateProjectRequestDTO{
		Title: &newTitle,
	}, other)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	stored, err := GetProjectService().GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original Title", stored.Title)
}

func Test_UpdateProject_ByCreator_AppliesPartialPatch(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Patch Me")

	newStage := "growth"
	updated, err := GetProjectService().UpdateProject(project.ID, &projects_dto.UpdateProjectRequestDTO{
		Stage: &newStage,
		Tags:  []string{"ai", "ml"},
	}, creator)
	require.NoError(t, err)

	assert.Equal(t, projects_enums.ProjectStageGrowth, updated.Stage)
	assert.Equal(t, []string{"ai", "ml"}, updated.Tags)
	// untouched fields survive
	assert.Equal(t, "Patch Me", updated.Title)
}

func Test_DeleteProject_ByNonCreator_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	other, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Keep Me")

	err := GetProjectService().DeleteProject(project.ID, other)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = GetProjectService().GetProject(project.ID)
	assert.NoError(t, err)
}

type recordingListener struct {
	deleted []uuid.UUID
}

func (l *recordingListener) OnProjectDeleted(projectID uuid.UUID) error {
	l.deleted = append(l.deleted, projectID)
	return nil
}

func Test_DeleteProject_ByCreator_RemovesMembersAndNotifiesListeners(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Doomed")

	listener := &recordingListener{}
	GetProjectService().RegisterDeletionListener(listener)

	err := GetProjectService().DeleteProject(project.ID, creator)
	require.NoError(t, err)

	_, err = GetProjectService().GetProject(project.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	members, err := memberRepository.ListMembersByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	assert.Contains(t, listener.deleted, project.ID)
}

type stubStatusProvider struct {
	statuses map[uuid.UUID]string
}

func (p *stubStatusProvider) GetStatusesByApplicant(uuid.UUID) (map[uuid.UUID]string, error) {
	return p.statuses, nil
}

func Test_ListWithApplicationStatus_JoinsCallerStatusesByProject(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	viewer, _ := users_testing.CreateTestUser(t)

	appliedProject := createProjectForTest(t, creator, "Applied Here")
	otherProject := createProjectForTest(t, creator, "Not Applied")

	service := &ProjectService{
		projectRepository: projectRepository,
		memberRepository:  memberRepository,
		projectCache:      GetProjectService().projectCache,
		logger:            GetProjectService().logger,
	}
	service.SetApplicationStatusProvider(&stubStatusProvider{
		statuses: map[uuid.UUID]string{appliedProject.ID: "pending"},
	})

	rows, err := service.ListWithApplicationStatus(viewer)
	require.NoError(t, err)

	statusByProject := map[uuid.UUID]*string{}
	for _, row := range rows {
		statusByProject[row.ID] = row.ApplicationStatus
	}

	require.NotNil(t, statusByProject[appliedProject.ID])
	assert.Equal(t, "pending", *statusByProject[appliedProject.ID])
	assert.Nil(t, statusByProject[otherProject.ID])
}

func Test_ListWithApplicationStatus_ForAnonymousCaller_AllStatusesNil(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	createProjectForTest(t, creator, "Public View")

	rows, err := GetProjectService().ListWithApplicationStatus(nil)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	for _, row := range rows {
		assert.Nil(t, row.ApplicationStatus)
	}
}

func Test_ListFeaturedProjects_TruncatesToLimit(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)

	for i := 0; i < 3; i++ {
		createProjectForTest(t, creator, "Featured Candidate")
	}

	projects, err := GetProjectService().ListFeaturedProjects(2)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func Test_IsCreatorAndIsMember_FailClosed(t *testing.T) {
	user, _ := users_testing.CreateTestUser(t)

	// unknown project: lookup fails, predicates return false
	unknownID := uuid.New()
	assert.False(t, GetProjectService().IsCreator(unknownID, user))
	assert.False(t, GetProjectService().IsMember(unknownID, user))

	// anonymous actor
	project := createProjectForTest(t, user, "Gated")
	assert.False(t, GetProjectService().IsCreator(project.ID, nil))
	assert.False(t, GetProjectService().IsMember(project.ID, nil))
}

func createProjectForTest(t *testing.T, creator *users_models.User, title string) *projects_dto.ProjectResponseDTO {
	t.Helper()

	project, err := GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       title,
		Description: "created from a test",
		Stage:       "idea",
		Category:    "saas",
	}, creator)
	require.NoError(t, err)

	return project
}
