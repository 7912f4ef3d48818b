package chat

import (
	"github.com/google/uuid"

	"cofoundry/internal/storage"
)

type MessageRepository struct{}

func (r *MessageRepository) CreateMessage(message *ProjectChatMessage) error {
	return storage.GetDb().Create(message).Error
}

// ListMessagesByProject returns the newest limit messages in ascending
// order, so a capped read keeps the tail of the conversation.
func (r *MessageRepository) ListMessagesByProject(projectID uuid.UUID, limit int) ([]ProjectChatMessage, error) {
	var messages []ProjectChatMessage

	query := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}

	for left, right := 0, len(messages)-1; left < right; left, right = left+1, right-1 {
		messages[left], messages[right] = messages[right], messages[left]
	}

	return messages, nil
}

func (r *MessageRepository) DeleteMessagesForProject(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ?", projectID).
		Delete(&ProjectChatMessage{}).Error
}
