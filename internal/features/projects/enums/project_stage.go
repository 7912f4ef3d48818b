package projects_enums

type ProjectStage string

const (
	ProjectStageIdea    ProjectStage = "idea"
	ProjectStageMVP     ProjectStage = "mvp"
	ProjectStageGrowth  ProjectStage = "growth"
	ProjectStageScaling ProjectStage = "scaling"
)

func (s ProjectStage) IsValid() bool {
	switch s {
	case ProjectStageIdea, ProjectStageMVP, ProjectStageGrowth, ProjectStageScaling:
		return true
	}
	return false
}

// Member roles. "admin" is reserved for the project creator; anything
// else is descriptive free text with "member" as the default.
const (
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
)
