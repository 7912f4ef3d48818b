package projects_services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projects_dto "cofoundry/internal/features/projects/dto"
	users_testing "cofoundry/internal/features/users/testing"
	"cofoundry/internal/util/apperrors"
)

func Test_AddMember_ByCreator_AddsUserByEmail(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	newMember, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Team Project")

	err := GetMemberService().AddMember(project.ID, &projects_dto.AddMemberRequestDTO{
		Email: newMember.Email,
		Role:  "designer",
	}, creator)
	require.NoError(t, err)

	members, err := GetMemberService().ListMembers(project.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.True(t, GetProjectService().IsMember(project.ID, newMember))
}

func Test_AddMember_ByNonCreator_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	outsider, _ := users_testing.CreateTestUser(t)
	target, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Locked Team")

	err := GetMemberService().AddMember(project.ID, &projects_dto.AddMemberRequestDTO{
		Email: target.Email,
	}, outsider)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func Test_AddMember_WithUnknownEmail_ReturnsNotFound(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Ghost Member")

	err := GetMemberService().AddMember(project.ID, &projects_dto.AddMemberRequestDTO{
		Email: "nobody@example.com",
	}, creator)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func Test_AddMember_Twice_ReturnsValidationError(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	member, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "No Duplicates")

	request := &projects_dto.AddMemberRequestDTO{Email: member.Email}

	require.NoError(t, GetMemberService().AddMember(project.ID, request, creator))
	err := GetMemberService().AddMember(project.ID, request, creator)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func Test_RemoveMember_MemberRemovesThemself_Succeeds(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	member, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Leavable Team")

	require.NoError(t, GetMemberService().AddMember(project.ID, &projects_dto.AddMemberRequestDTO{
		Email: member.Email,
	}, creator))

	err := GetMemberService().RemoveMember(project.ID, member.ID, member)
	require.NoError(t, err)

	assert.False(t, GetProjectService().IsMember(project.ID, member))
}

func Test_RemoveMember_ByUnrelatedUser_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	member, _ := users_testing.CreateTestUser(t)
	outsider, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Protected Team")

	require.NoError(t, GetMemberService().AddMember(project.ID, &projects_dto.AddMemberRequestDTO{
		Email: member.Email,
	}, creator))

	err := GetMemberService().RemoveMember(project.ID, member.ID, outsider)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func Test_RemoveMember_TargetingCreator_ReturnsValidationError(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Creator Stays")

	err := GetMemberService().RemoveMember(project.ID, creator.ID, creator)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func Test_ListMembers_IncludesProfileIdentity(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createProjectForTest(t, creator, "Named Team")

	members, err := GetMemberService().ListMembers(project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)

	require.NotNil(t, members[0].FirstName)
	assert.Equal(t, "Test", *members[0].FirstName)
	require.NotNil(t, members[0].LastName)
	assert.Equal(t, "User", *members[0].LastName)
}
