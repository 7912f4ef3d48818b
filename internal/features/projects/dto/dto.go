package projects_dto

import (
	"time"

	"github.com/google/uuid"

	projects_enums "cofoundry/internal/features/projects/enums"
)

type CreateProjectRequestDTO struct {
	Title       string   `json:"title"       binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"required,min=1"`
	Stage       string   `json:"stage"       binding:"required,oneof=idea mvp growth scaling"`
	Category    string   `json:"category"    binding:"required,min=1,max=100"`
	Tags        []string `json:"tags"`
	RolesNeeded []string `json:"rolesNeeded"`
	FundingGoal float64  `json:"fundingGoal" binding:"gte=0"`
	ResourceURL *string  `json:"resourceUrl"`
}

type UpdateProjectRequestDTO struct {
	Title       *string  `json:"title"       binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Stage       *string  `json:"stage"       binding:"omitempty,oneof=idea mvp growth scaling"`
	Category    *string  `json:"category"    binding:"omitempty,min=1,max=100"`
	Tags        []string `json:"tags"`
	RolesNeeded []string `json:"rolesNeeded"`
	FundingGoal *float64 `json:"fundingGoal" binding:"omitempty,gte=0"`
	ResourceURL *string  `json:"resourceUrl"`
}

type ProjectResponseDTO struct {
	ID          uuid.UUID                   `json:"id"`
	CreatorID   uuid.UUID                   `json:"creatorId"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Stage       projects_enums.ProjectStage `json:"stage"`
	Category    string                      `json:"category"`
	Tags        []string                    `json:"tags"`
	RolesNeeded []string                    `json:"rolesNeeded"`
	FundingGoal float64                     `json:"fundingGoal"`
	ResourceURL *string                     `json:"resourceUrl"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

type ProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

// ProjectWithApplicationStatusDTO carries the caller's own application
// status for the project, nil when the caller never applied or is
// anonymous.
type ProjectWithApplicationStatusDTO struct {
	ProjectResponseDTO
	ApplicationStatus *string `json:"applicationStatus"`
}

type ProjectsWithApplicationStatusResponseDTO struct {
	Projects []ProjectWithApplicationStatusDTO `json:"projects"`
}

type MemberResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	UserID    uuid.UUID `json:"userId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	AvatarURL *string   `json:"avatarUrl"`
}

type MembersResponseDTO struct {
	Members []MemberResponseDTO `json:"members"`
}

type AddMemberRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"  binding:"omitempty,max=100"`
}
