package tasks

import (
	"sync"

	projects_services "cofoundry/internal/features/projects/services"
	users_services "cofoundry/internal/features/users/services"
)

var taskRepository = &TaskRepository{}

var taskService = &TaskService{
	taskRepository: taskRepository,
	projectService: projects_services.GetProjectService(),
	profileService: users_services.GetProfileService(),
}

var taskController = &TaskController{
	taskService: taskService,
}

func GetTaskService() *TaskService {
	return taskService
}

func GetTaskController() *TaskController {
	return taskController
}

var setupOnce sync.Once

func SetupDependencies() {
	setupOnce.Do(setupDependencies)
}

func setupDependencies() {
	projects_services.GetProjectService().RegisterDeletionListener(taskService)
}
