package projects_controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projects_dto "cofoundry/internal/features/projects/dto"
	projects_services "cofoundry/internal/features/projects/services"
	users_middleware "cofoundry/internal/features/users/middleware"
	"cofoundry/internal/util/apperrors"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
	memberService  *projects_services.MemberService
}

// Public routes run behind optional auth so ListWithApplicationStatus can
// see the caller when a token is present.
func (c *ProjectController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/projects", c.ListProjects)
	router.GET("/projects/featured", c.ListFeaturedProjects)
	router.GET("/projects/:projectId", c.GetProject)
	router.GET("/projects/:projectId/members", c.ListMembers)
}

func (c *ProjectController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/projects", c.CreateProject)
	router.PUT("/projects/:projectId", c.UpdateProject)
	router.DELETE("/projects/:projectId", c.DeleteProject)
	router.POST("/projects/:projectId/members", c.AddMember)
	router.DELETE("/projects/:projectId/members/:userId", c.RemoveMember)
	router.GET("/projects/:projectId/permissions", c.GetPermissions)
}

// CreateProject
// @Summary Create a startup project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body projects_dto.CreateProjectRequestDTO true "Project"
// @Success 201 {object} projects_dto.ProjectResponseDTO
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	project, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// GetProject
// @Summary Get a project by id
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := c.projectService.GetProjectWithCache(projectID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// ListProjects
// @Summary List all projects
// @Description Includes the caller's own application status per project when authenticated
// @Tags projects
// @Produce json
// @Success 200 {object} projects_dto.ProjectsWithApplicationStatusResponseDTO
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projects, err := c.projectService.ListWithApplicationStatus(user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, projects_dto.ProjectsWithApplicationStatusResponseDTO{Projects: projects})
}

// ListFeaturedProjects
// @Summary List the most recent projects
// @Tags projects
// @Produce json
// @Param limit query int false "Maximum rows"
// @Success 200 {object} projects_dto.ProjectsResponseDTO
// @Router /projects/featured [get]
func (c *ProjectController) ListFeaturedProjects(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "6"))

	projects, err := c.projectService.ListFeaturedProjects(limit)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, projects_dto.ProjectsResponseDTO{Projects: projects})
}

// UpdateProject
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param request body projects_dto.UpdateProjectRequestDTO true "Fields to update"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var request projects_dto.UpdateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	project, err := c.projectService.UpdateProject(projectID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// DeleteProject
// @Summary Delete a project and all its dependent rows
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if err := c.projectService.DeleteProject(projectID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

// ListMembers
// @Summary List project members with profile data
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} projects_dto.MembersResponseDTO
// @Router /projects/{projectId}/members [get]
func (c *ProjectController) ListMembers(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	members, err := c.memberService.ListMembers(projectID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, projects_dto.MembersResponseDTO{Members: members})
}

// AddMember
// @Summary Add a member by email
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param request body projects_dto.AddMemberRequestDTO true "Member"
// @Success 201 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/members [post]
func (c *ProjectController) AddMember(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var request projects_dto.AddMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := c.memberService.AddMember(projectID, &request, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "member added"})
}

// RemoveMember
// @Summary Remove a member
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/members/{userId} [delete]
func (c *ProjectController) RemoveMember(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := c.memberService.RemoveMember(projectID, userID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "member removed"})
}

// GetPermissions
// @Summary Get the caller's relationship to a project
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /projects/{projectId}/permissions [get]
func (c *ProjectController) GetPermissions(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"isCreator": c.projectService.IsCreator(projectID, user),
		"isMember":  c.projectService.IsMember(projectID, user),
	})
}
