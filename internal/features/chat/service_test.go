package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projects_dto "cofoundry/internal/features/projects/dto"
	projects_services "cofoundry/internal/features/projects/services"
	users_models "cofoundry/internal/features/users/models"
	users_testing "cofoundry/internal/features/users/testing"
	"cofoundry/internal/util/apperrors"
)

func Test_SendMessage_ByMember_AppendsToHistory(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createChatTestProject(t, creator)

	message, err := GetChatService().SendMessage(project.ID, &SendMessageRequestDTO{
		Content: "first message",
	}, creator)
	require.NoError(t, err)

	assert.Equal(t, "first message", message.Content)
	assert.Equal(t, creator.ID, message.SenderID)
	assert.Equal(t, "Test", message.SenderFirstName)

	history, err := GetChatService().ListMessages(project.ID, creator)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, message.ID, history[0].ID)
}

func Test_SendMessage_WithWhitespaceContent_ReturnsValidationError(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createChatTestProject(t, creator)

	_, err := GetChatService().SendMessage(project.ID, &SendMessageRequestDTO{
		Content: "   \n\t ",
	}, creator)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func Test_SendMessage_ByNonMember_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	outsider, _ := users_testing.CreateTestUser(t)
	project := createChatTestProject(t, creator)

	_, err := GetChatService().SendMessage(project.ID, &SendMessageRequestDTO{
		Content: "let me in",
	}, outsider)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func Test_ListMessages_ByNonMember_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	outsider, _ := users_testing.CreateTestUser(t)
	project := createChatTestProject(t, creator)

	_, err := GetChatService().ListMessages(project.ID, outsider)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func Test_ListMessages_ReturnsMessagesInInsertionOrder(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createChatTestProject(t, creator)

	for _, content := range []string{"one", "two", "three"} {
		_, err := GetChatService().SendMessage(project.ID, &SendMessageRequestDTO{Content: content}, creator)
		require.NoError(t, err)
	}

	history, err := GetChatService().ListMessages(project.ID, creator)
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, "one", history[0].Content)
	assert.Equal(t, "two", history[1].Content)
	assert.Equal(t, "three", history[2].Content)
}

func Test_ListMessages_BeyondHistoryCap_KeepsTheNewestMessages(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createChatTestProject(t, creator)

	for i := 0; i < messageHistoryLimit+1; i++ {
		_, err := GetChatService().SendMessage(project.ID, &SendMessageRequestDTO{
			Content: fmt.Sprintf("message %d", i),
		}, creator)
		require.NoError(t, err)
	}

	history, err := GetChatService().ListMessages(project.ID, creator)
	require.NoError(t, err)
	require.Len(t, history, messageHistoryLimit)

	assert.Equal(t, fmt.Sprintf("message %d", messageHistoryLimit), history[len(history)-1].Content)
	for _, message := range history {
		assert.NotEqual(t, "message 0", message.Content)
	}
}

func Test_SendMessage_DeliversToOpenSubscriptions(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	project := createChatTestProject(t, creator)

	subscription, err := GetChatService().Subscribe(project.ID, creator)
	require.NoError(t, err)
	defer subscription.Unsubscribe()

	sent, err := GetChatService().SendMessage(project.ID, &SendMessageRequestDTO{
		Content: "broadcast me",
	}, creator)
	require.NoError(t, err)

	select {
	case received := <-subscription.C:
		assert.Equal(t, sent.ID, received.ID)
		assert.Equal(t, "broadcast me", received.Content)
	default:
		t.Fatal("expected the message on the subscription channel")
	}
}

func Test_Subscribe_ByNonMember_ReturnsForbidden(t *testing.T) {
	creator, _ := users_testing.CreateTestUser(t)
	outsider, _ := users_testing.CreateTestUser(t)
	project := createChatTestProject(t, creator)

	_, err := GetChatService().Subscribe(project.ID, outsider)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func createChatTestProject(t *testing.T, creator *users_models.User) *projects_dto.ProjectResponseDTO {
	t.Helper()

	project, err := projects_services.GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       "Chat Host",
		Description: "project backing the chat tests",
		Stage:       "idea",
		Category:    "saas",
	}, creator)
	require.NoError(t, err)

	return project
}
