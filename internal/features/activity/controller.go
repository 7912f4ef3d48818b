package activity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	users_middleware "cofoundry/internal/features/users/middleware"
	"cofoundry/internal/util/apperrors"
)

type ActivityController struct {
	activityService *ActivityService
}

func (c *ActivityController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/activities/me", c.ListMine)
	router.GET("/projects/:projectId/activities", c.ListForProject)
}

// ListMine
// @Summary List the caller's recent activity
// @Tags activities
// @Produce json
// @Success 200 {object} activity.ActivitiesResponseDTO
// @Security BearerAuth
// @Router /activities/me [get]
func (c *ActivityController) ListMine(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	entries, err := c.activityService.GetUserActivities(user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ActivitiesResponseDTO{Activities: entries})
}

// ListForProject
// @Summary List a project's recent activity
// @Tags activities
// @Produce json
// @Param projectId path string true "Project ID"
// @Param limit query int false "Max entries" default(100)
// @Success 200 {object} activity.ActivitiesResponseDTO
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/activities [get]
func (c *ActivityController) ListForProject(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	entries, err := c.activityService.GetProjectActivities(projectID, limit, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ActivitiesResponseDTO{Activities: entries})
}
