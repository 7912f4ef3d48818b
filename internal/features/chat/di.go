package chat

import (
	"sync"

	projects_services "cofoundry/internal/features/projects/services"
	users_services "cofoundry/internal/features/users/services"
	"cofoundry/internal/util/rate_limit"
)

var messageRepository = &MessageRepository{}

var chatService = &ChatService{
	messageRepository: messageRepository,
	projectService:    projects_services.GetProjectService(),
	profileService:    users_services.GetProfileService(),
	rateLimiter:       rate_limit.NewRateLimiter("rate_limit:chat:"),
	hub:               NewHub(),
}

var chatController = &ChatController{
	chatService: chatService,
}

func GetChatService() *ChatService {
	return chatService
}

func GetChatController() *ChatController {
	return chatController
}

var setupOnce sync.Once

func SetupDependencies() {
	setupOnce.Do(setupDependencies)
}

func setupDependencies() {
	projects_services.GetProjectService().RegisterDeletionListener(chatService)
}
