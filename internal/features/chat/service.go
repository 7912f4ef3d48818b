package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	projects_services "cofoundry/internal/features/projects/services"
	users_dto "cofoundry/internal/features/users/dto"
	users_models "cofoundry/internal/features/users/models"
	users_services "cofoundry/internal/features/users/services"
	"cofoundry/internal/util/apperrors"
	"cofoundry/internal/util/logger"
	"cofoundry/internal/util/rate_limit"
)

const (
	messageHistoryLimit = 200
	messagesPerSecond   = 2
	messageBurst        = 10

	placeholderFirstName = "Unknown"
	placeholderLastName  = "User"
)

type ChatService struct {
	messageRepository *MessageRepository
	projectService    *projects_services.ProjectService
	profileService    *users_services.ProfileService
	rateLimiter       *rate_limit.RateLimiter
	hub               *Hub
}

func (s *ChatService) Hub() *Hub {
	return s.hub
}

// ListMessages returns the project's history in insertion order. Sender
// names degrade to placeholders when profile rows are missing.
func (s *ChatService) ListMessages(projectID uuid.UUID, actor *users_models.User) ([]MessageResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	if !s.projectService.IsCreator(projectID, actor) && !s.projectService.IsMember(projectID, actor) {
		return nil, fmt.Errorf("%w: only project members can read the chat", apperrors.ErrForbidden)
	}

	messages, err := s.messageRepository.ListMessagesByProject(projectID, messageHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	senderIDs := make([]uuid.UUID, 0, len(messages))
	for _, message := range messages {
		senderIDs = append(senderIDs, message.SenderID)
	}

	identities, err := s.profileService.ResolveIdentities(senderIDs)
	if err != nil {
		logger.GetLogger().Warn("sender identity resolution failed", "projectId", projectID, "error", err)
		identities = map[uuid.UUID]users_dto.IdentityDTO{}
	}

	result := make([]MessageResponseDTO, 0, len(messages))
	for i := range messages {
		result = append(result, toMessageResponse(&messages[i], identities[messages[i].SenderID]))
	}

	return result, nil
}

// SendMessage appends a message and pushes it to every open feed for
// the project. Senders are rate limited per user.
func (s *ChatService) SendMessage(
	projectID uuid.UUID,
	request *SendMessageRequestDTO,
	actor *users_models.User,
) (*MessageResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content is required", apperrors.ErrValidation)
	}

	if !s.projectService.IsCreator(projectID, actor) && !s.projectService.IsMember(projectID, actor) {
		return nil, fmt.Errorf("%w: only project members can send messages", apperrors.ErrForbidden)
	}

	result, err := s.rateLimiter.CheckRateLimit(actor.ID.String(), messagesPerSecond, messageBurst)
	if err != nil {
		logger.GetLogger().Warn("chat rate limit check failed", "userId", actor.ID, "error", err)
	} else if !result.Allowed {
		return nil, fmt.Errorf("%w: sending too fast, retry in %ds", apperrors.ErrValidation, result.RetryAfterSec)
	}

	message := &ProjectChatMessage{
		ID:        uuid.New(),
		ProjectID: projectID,
		SenderID:  actor.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messageRepository.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	identity, err := s.profileService.ResolveIdentity(actor.ID)
	if err != nil {
		identity = users_dto.IdentityDTO{}
	}

	response := toMessageResponse(message, identity)
	s.hub.Publish(projectID, response)

	return &response, nil
}

func (s *ChatService) Subscribe(projectID uuid.UUID, actor *users_models.User) (*Subscription, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	if !s.projectService.IsCreator(projectID, actor) && !s.projectService.IsMember(projectID, actor) {
		return nil, fmt.Errorf("%w: only project members can subscribe", apperrors.ErrForbidden)
	}

	return s.hub.Subscribe(projectID), nil
}

func (s *ChatService) OnProjectDeleted(projectID uuid.UUID) error {
	return s.messageRepository.DeleteMessagesForProject(projectID)
}

func toMessageResponse(message *ProjectChatMessage, identity users_dto.IdentityDTO) MessageResponseDTO {
	firstName := placeholderFirstName
	lastName := placeholderLastName

	if identity.FirstName != nil && *identity.FirstName != "" {
		firstName = *identity.FirstName
	}
	if identity.LastName != nil && *identity.LastName != "" {
		lastName = *identity.LastName
	}

	return MessageResponseDTO{
		ID:              message.ID,
		ProjectID:       message.ProjectID,
		SenderID:        message.SenderID,
		Content:         message.Content,
		CreatedAt:       message.CreatedAt,
		SenderFirstName: firstName,
		SenderLastName:  lastName,
		SenderAvatarURL: identity.AvatarURL,
	}
}
