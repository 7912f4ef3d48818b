package ideas

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	users_middleware "cofoundry/internal/features/users/middleware"
	"cofoundry/internal/util/apperrors"
)

type IdeaController struct {
	ideaService *IdeaService
}

func (c *IdeaController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/ideas", c.ListIdeas)
}

func (c *IdeaController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/ideas", c.CreateIdea)
	router.PUT("/ideas/:ideaId/status", c.MoveIdea)
	router.POST("/ideas/:ideaId/vote", c.VoteIdea)
	router.DELETE("/ideas/:ideaId", c.DeleteIdea)
}

// ListIdeas
// @Summary List a project's ideas ordered by votes
// @Tags ideas
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} ideas.IdeasResponseDTO
// @Router /projects/{projectId}/ideas [get]
func (c *IdeaController) ListIdeas(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	result, err := c.ideaService.ListIdeas(projectID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, IdeasResponseDTO{Ideas: result})
}

// CreateIdea
// @Summary Add an idea to a project board
// @Tags ideas
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param request body ideas.CreateIdeaRequestDTO true "Idea"
// @Success 201 {object} ideas.IdeaResponseDTO
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/ideas [post]
func (c *IdeaController) CreateIdea(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var request CreateIdeaRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	idea, err := c.ideaService.CreateIdea(projectID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, idea)
}

// MoveIdea
// @Summary Move an idea to another board column
// @Tags ideas
// @Accept json
// @Produce json
// @Param ideaId path string true "Idea ID"
// @Param request body ideas.MoveIdeaRequestDTO true "Target status"
// @Success 200 {object} ideas.IdeaResponseDTO
// @Security BearerAuth
// @Router /ideas/{ideaId}/status [put]
func (c *IdeaController) MoveIdea(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	ideaID, err := uuid.Parse(ctx.Param("ideaId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}

	var request MoveIdeaRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	idea, err := c.ideaService.MoveIdea(ideaID, IdeaStatus(request.Status), user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, idea)
}

// VoteIdea
// @Summary Upvote an idea
// @Tags ideas
// @Produce json
// @Param ideaId path string true "Idea ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /ideas/{ideaId}/vote [post]
func (c *IdeaController) VoteIdea(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	ideaID, err := uuid.Parse(ctx.Param("ideaId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}

	if err := c.ideaService.VoteIdea(ideaID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "vote recorded"})
}

// DeleteIdea
// @Summary Delete an idea
// @Tags ideas
// @Produce json
// @Param ideaId path string true "Idea ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /ideas/{ideaId} [delete]
func (c *IdeaController) DeleteIdea(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	ideaID, err := uuid.Parse(ctx.Param("ideaId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}

	if err := c.ideaService.DeleteIdea(ideaID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "idea deleted"})
}
