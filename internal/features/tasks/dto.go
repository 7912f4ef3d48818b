package tasks

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequestDTO struct {
	Title       string     `json:"title"       binding:"required,min=1,max=200"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"    binding:"omitempty,oneof=low medium high"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
}

type UpdateTaskRequestDTO struct {
	Title       *string    `json:"title"       binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"      binding:"omitempty,oneof=todo in_progress done"`
	Priority    *string    `json:"priority"    binding:"omitempty,oneof=low medium high"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
}

type TaskResponseDTO struct {
	ID          uuid.UUID    `json:"id"`
	ProjectID   uuid.UUID    `json:"projectId"`
	CreatorID   uuid.UUID    `json:"creatorId"`
	AssigneeID  *uuid.UUID   `json:"assigneeId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	AssigneeFirstName *string `json:"assigneeFirstName"`
	AssigneeLastName  *string `json:"assigneeLastName"`
}

type TasksResponseDTO struct {
	Tasks []TaskResponseDTO `json:"tasks"`
}
