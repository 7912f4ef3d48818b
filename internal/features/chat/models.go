package chat

import (
	"time"

	"github.com/google/uuid"

	"cofoundry/internal/storage"
)

func init() {
	storage.RegisterModels(&ProjectChatMessage{})
}

// ProjectChatMessage is append-only; no edit or delete operation exists
// outside project cascade deletion.
type ProjectChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;index;not null" json:"projectId"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null" json:"senderId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (*ProjectChatMessage) TableName() string {
	return "project_chat_messages"
}
