package ideas

import (
	"time"

	"github.com/google/uuid"

	"cofoundry/internal/storage"
)

func init() {
	storage.RegisterModels(&ProjectIdea{})
}

type IdeaStatus string

const (
	IdeaStatusToExplore  IdeaStatus = "to_explore"
	IdeaStatusInProgress IdeaStatus = "in_progress"
	IdeaStatusFinalized  IdeaStatus = "finalized"
)

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusToExplore, IdeaStatusInProgress, IdeaStatusFinalized:
		return true
	}
	return false
}

type ProjectIdea struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"projectId"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null" json:"creatorId"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      IdeaStatus `gorm:"not null" json:"status"`
	Votes       int        `gorm:"default:0" json:"votes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (*ProjectIdea) TableName() string {
	return "project_ideas"
}
