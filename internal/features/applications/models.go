package applications

import (
	"time"

	"github.com/google/uuid"

	"cofoundry/internal/storage"
)

func init() {
	storage.RegisterModels(&ProjectApplication{})
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsTerminal reports whether no further transition is defined.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

func (s ApplicationStatus) IsValidDecision() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

type ProjectApplication struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID    uuid.UUID         `gorm:"type:uuid;index;not null" json:"projectId"`
	ApplicantID  uuid.UUID         `gorm:"type:uuid;index;not null" json:"applicantId"`
	Status       ApplicationStatus `gorm:"not null" json:"status"`
	Introduction string            `gorm:"type:text;not null" json:"introduction"`
	Experience   string            `gorm:"type:text;not null" json:"experience"`
	Motivation   string            `gorm:"type:text;not null" json:"motivation"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func (*ProjectApplication) TableName() string {
	return "project_applications"
}
