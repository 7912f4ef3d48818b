package ideas

import (
	"time"

	"github.com/google/uuid"
)

type CreateIdeaRequestDTO struct {
	Title       string `json:"title"       binding:"required,min=1,max=200"`
	Description string `json:"description"`
}

type MoveIdeaRequestDTO struct {
	Status string `json:"status" binding:"required,oneof=to_explore in_progress finalized"`
}

type IdeaResponseDTO struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"projectId"`
	CreatorID   uuid.UUID  `json:"creatorId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      IdeaStatus `json:"status"`
	Votes       int        `json:"votes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	CreatorFirstName *string `json:"creatorFirstName"`
	CreatorLastName  *string `json:"creatorLastName"`
	CreatorAvatarURL *string `json:"creatorAvatarUrl"`
}

type IdeasResponseDTO struct {
	Ideas []IdeaResponseDTO `json:"ideas"`
}
