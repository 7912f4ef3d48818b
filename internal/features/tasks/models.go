package tasks

import (
	"time"

	"github.com/google/uuid"

	"cofoundry/internal/storage"
)

func init() {
	storage.RegisterModels(&ProjectTask{})
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type ProjectTask struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID    `gorm:"type:uuid;index;not null" json:"projectId"`
	CreatorID   uuid.UUID    `gorm:"type:uuid;not null" json:"creatorId"`
	AssigneeID  *uuid.UUID   `gorm:"type:uuid" json:"assigneeId"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"not null" json:"status"`
	Priority    TaskPriority `gorm:"not null;default:medium" json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (*ProjectTask) TableName() string {
	return "project_tasks"
}
