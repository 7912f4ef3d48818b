package activity

import (
	"sync"

	"cofoundry/internal/features/applications"
	projects_services "cofoundry/internal/features/projects/services"
	users_services "cofoundry/internal/features/users/services"
)

var activityRepository = &ActivityRepository{}

var activityService = &ActivityService{
	activityRepository: activityRepository,
	projectService:     projects_services.GetProjectService(),
}

var activityController = &ActivityController{
	activityService: activityService,
}

func GetActivityService() *ActivityService {
	return activityService
}

func GetActivityController() *ActivityController {
	return activityController
}

var setupOnce sync.Once

// SetupDependencies attaches the audit trail to the features that emit
// entries; both depend on packages below this one.
func SetupDependencies() {
	setupOnce.Do(setupDependencies)
}

func setupDependencies() {
	users_services.GetUserService().SetActivityWriter(activityService)
	projects_services.GetProjectService().SetActivityWriter(activityService)
	applications.GetApplicationService().SetActivityWriter(activityService)
}
