package chat

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequestDTO struct {
	Content string `json:"content" binding:"required"`
}

type MessageResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	SenderID  uuid.UUID `json:"senderId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	// Sender display name falls back to placeholders when profile rows
	// are missing, never to an error.
	SenderFirstName string  `json:"senderFirstName"`
	SenderLastName  string  `json:"senderLastName"`
	SenderAvatarURL *string `json:"senderAvatarUrl"`
}

type MessagesResponseDTO struct {
	Messages []MessageResponseDTO `json:"messages"`
}
