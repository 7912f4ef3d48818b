package applications

import (
	"sync"

	projects_services "cofoundry/internal/features/projects/services"
	users_services "cofoundry/internal/features/users/services"
)

var applicationRepository = &ApplicationRepository{}

var applicationService = &ApplicationService{
	applicationRepository: applicationRepository,
	projectService:        projects_services.GetProjectService(),
	memberService:         projects_services.GetMemberService(),
	profileService:        users_services.GetProfileService(),
}

var applicationController = &ApplicationController{
	applicationService: applicationService,
}

func GetApplicationService() *ApplicationService {
	return applicationService
}

func GetApplicationController() *ApplicationController {
	return applicationController
}

var setupOnce sync.Once

// SetupDependencies wires this feature into the project lifecycle: the
// status join on project listings and the deletion cascade.
func SetupDependencies() {
	setupOnce.Do(setupDependencies)
}

func setupDependencies() {
	projects_services.GetProjectService().SetApplicationStatusProvider(applicationService)
	projects_services.GetProjectService().RegisterDeletionListener(applicationService)
}
