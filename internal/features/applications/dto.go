package applications

import (
	"time"

	"github.com/google/uuid"

	projects_enums "cofoundry/internal/features/projects/enums"
)

type SubmitApplicationRequestDTO struct {
	Introduction string `json:"introduction" binding:"required"`
	Experience   string `json:"experience"   binding:"required"`
	Motivation   string `json:"motivation"   binding:"required"`
}

type DecideApplicationRequestDTO struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
}

type ApplicationResponseDTO struct {
	ID           uuid.UUID         `json:"id"`
	ProjectID    uuid.UUID         `json:"projectId"`
	ApplicantID  uuid.UUID         `json:"applicantId"`
	Status       ApplicationStatus `json:"status"`
	Introduction string            `json:"introduction"`
	Experience   string            `json:"experience"`
	Motivation   string            `json:"motivation"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`

	// Applicant display identity, nil when profile rows are missing.
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
}

type ApplicationsResponseDTO struct {
	Applications []ApplicationResponseDTO `json:"applications"`
}

// ApplicantApplicationDTO is an application seen from the applicant's
// side, carrying a summary of the target project.
type ApplicantApplicationDTO struct {
	ID        uuid.UUID         `json:"id"`
	ProjectID uuid.UUID         `json:"projectId"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	ProjectTitle       string                       `json:"projectTitle"`
	ProjectDescription string                       `json:"projectDescription"`
	ProjectCategory    string                       `json:"projectCategory"`
	ProjectStage       projects_enums.ProjectStage  `json:"projectStage"`
}

type ApplicantApplicationsResponseDTO struct {
	Applications []ApplicantApplicationDTO `json:"applications"`
}

type DecisionResponseDTO struct {
	Application ApplicationResponseDTO `json:"application"`
	Message     string                 `json:"message"`
}
