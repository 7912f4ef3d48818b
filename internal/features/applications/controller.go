package applications

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	users_middleware "cofoundry/internal/features/users/middleware"
	"cofoundry/internal/util/apperrors"
)

type ApplicationController struct {
	applicationService *ApplicationService
}

func (c *ApplicationController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/applications", c.Submit)
	router.GET("/projects/:projectId/applications", c.ListForProject)
	router.GET("/applications/me", c.ListMine)
	router.PUT("/applications/:applicationId/decision", c.Decide)
}

// Submit
// @Summary Apply to join a project
// @Tags applications
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param request body applications.SubmitApplicationRequestDTO true "Application answers"
// @Success 201 {object} applications.ApplicationResponseDTO
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var request SubmitApplicationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	application, err := c.applicationService.Submit(projectID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, application)
}

// ListForProject
// @Summary List a project's applications
// @Description Creator only; applications are enriched with applicant profiles
// @Tags applications
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} applications.ApplicationsResponseDTO
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/applications [get]
func (c *ApplicationController) ListForProject(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	result, err := c.applicationService.ListForProject(projectID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ApplicationsResponseDTO{Applications: result})
}

// ListMine
// @Summary List the caller's submitted applications
// @Tags applications
// @Produce json
// @Success 200 {object} applications.ApplicantApplicationsResponseDTO
// @Security BearerAuth
// @Router /applications/me [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	result, err := c.applicationService.ListForApplicant(user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ApplicantApplicationsResponseDTO{Applications: result})
}

// Decide
// @Summary Approve or reject a pending application
// @Tags applications
// @Accept json
// @Produce json
// @Param applicationId path string true "Application ID"
// @Param request body applications.DecideApplicationRequestDTO true "Decision"
// @Success 200 {object} applications.DecisionResponseDTO
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /applications/{applicationId}/decision [put]
func (c *ApplicationController) Decide(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	applicationID, err := uuid.Parse(ctx.Param("applicationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	var request DecideApplicationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := c.applicationService.Decide(applicationID, ApplicationStatus(request.Decision), user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
