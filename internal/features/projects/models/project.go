package projects_models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	projects_enums "cofoundry/internal/features/projects/enums"
	"cofoundry/internal/storage"
)

func init() {
	storage.RegisterModels(&StartupProject{}, &ProjectMember{})
}

type StartupProject struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	CreatorID   uuid.UUID                   `gorm:"type:uuid;index;not null" json:"creatorId"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Stage       projects_enums.ProjectStage `gorm:"not null" json:"stage"`
	Category    string                      `gorm:"index;not null" json:"category"`
	FundingGoal float64                     `gorm:"default:0" json:"fundingGoal"`
	ResourceURL *string                     `json:"resourceUrl"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`

	// Stored as JSON text so the row stays portable across dialects.
	TagsRaw        string `gorm:"column:tags;type:text" json:"-"`
	RolesNeededRaw string `gorm:"column:roles_needed;type:text" json:"-"`

	Tags        []string `gorm:"-" json:"tags"`
	RolesNeeded []string `gorm:"-" json:"rolesNeeded"`
}

func (*StartupProject) TableName() string {
	return "startup_projects"
}

func (p *StartupProject) BeforeSave(_ *gorm.DB) error {
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return err
	}
	p.TagsRaw = string(tags)

	roles, err := json.Marshal(p.RolesNeeded)
	if err != nil {
		return err
	}
	p.RolesNeededRaw = string(roles)

	return nil
}

func (p *StartupProject) AfterFind(_ *gorm.DB) error {
	p.Tags = []string{}
	p.RolesNeeded = []string{}

	if p.TagsRaw != "" {
		if err := json.Unmarshal([]byte(p.TagsRaw), &p.Tags); err != nil {
			return err
		}
	}
	if p.RolesNeededRaw != "" {
		if err := json.Unmarshal([]byte(p.RolesNeededRaw), &p.RolesNeeded); err != nil {
			return err
		}
	}

	return nil
}

type ProjectMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_project_user;not null" json:"projectId"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_project_user;not null" json:"userId"`
	Role      string    `gorm:"not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (*ProjectMember) TableName() string {
	return "project_members"
}
