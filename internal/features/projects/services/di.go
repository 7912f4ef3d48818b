package projects_services

import (
	"cofoundry/internal/cache"
	projects_models "cofoundry/internal/features/projects/models"
	projects_repositories "cofoundry/internal/features/projects/repositories"
	users_services "cofoundry/internal/features/users/services"
	cache_utils "cofoundry/internal/util/cache"
	"cofoundry/internal/util/logger"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var memberRepository = &projects_repositories.MemberRepository{}

var projectService = &ProjectService{
	projectRepository: projectRepository,
	memberRepository:  memberRepository,
	projectCache:      cache_utils.NewCacheUtil[projects_models.StartupProject](cache.GetCache(), "project:"),
	logger:            logger.GetLogger(),
}

var memberService = &MemberService{
	memberRepository:  memberRepository,
	projectRepository: projectRepository,
	profileService:    users_services.GetProfileService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMemberService() *MemberService {
	return memberService
}
