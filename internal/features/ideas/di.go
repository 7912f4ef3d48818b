package ideas

import (
	"sync"

	projects_services "cofoundry/internal/features/projects/services"
	users_services "cofoundry/internal/features/users/services"
)

var ideaRepository = &IdeaRepository{}

var ideaService = &IdeaService{
	ideaRepository: ideaRepository,
	projectService: projects_services.GetProjectService(),
	profileService: users_services.GetProfileService(),
}

var ideaController = &IdeaController{
	ideaService: ideaService,
}

func GetIdeaService() *IdeaService {
	return ideaService
}

func GetIdeaController() *IdeaController {
	return ideaController
}

var setupOnce sync.Once

func SetupDependencies() {
	setupOnce.Do(setupDependencies)
}

func setupDependencies() {
	projects_services.GetProjectService().RegisterDeletionListener(ideaService)
}
