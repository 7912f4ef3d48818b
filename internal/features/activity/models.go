package activity

import (
	"time"

	"github.com/google/uuid"

	"cofoundry/internal/storage"
)

func init() {
	storage.RegisterModels(&Activity{})
}

// Activity is an append-only audit trail entry. Either reference may be
// nil: account events carry no project, system events carry no user.
type Activity struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"projectId"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (*Activity) TableName() string {
	return "activities"
}

type ActivitiesResponseDTO struct {
	Activities []Activity `json:"activities"`
}
