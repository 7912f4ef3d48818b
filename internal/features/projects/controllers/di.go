package projects_controllers

import (
	projects_services "cofoundry/internal/features/projects/services"
)

var projectController = &ProjectController{
	projectService: projects_services.GetProjectService(),
	memberService:  projects_services.GetMemberService(),
}

func GetProjectController() *ProjectController {
	return projectController
}
