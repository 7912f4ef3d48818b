package tasks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	users_middleware "cofoundry/internal/features/users/middleware"
	"cofoundry/internal/util/apperrors"
)

type TaskController struct {
	taskService *TaskService
}

func (c *TaskController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/tasks", c.ListTasks)
	router.POST("/projects/:projectId/tasks", c.CreateTask)
	router.PUT("/tasks/:taskId", c.UpdateTask)
	router.DELETE("/tasks/:taskId", c.DeleteTask)
}

// ListTasks
// @Summary List a project's tasks
// @Tags tasks
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} tasks.TasksResponseDTO
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /projects/{projectId}/tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	tasks, err := c.taskService.ListTasks(projectID, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, TasksResponseDTO{Tasks: tasks})
}

// CreateTask
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param request body tasks.CreateTaskRequestDTO true "Task"
// @Success 201 {object} tasks.TaskResponseDTO
// @Security BearerAuth
// @Router /projects/{projectId}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var request CreateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	task, err := c.taskService.CreateTask(projectID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

// UpdateTask
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskId path string true "Task ID"
// @Param request body tasks.UpdateTaskRequestDTO true "Fields to update"
// @Success 200 {object} tasks.TaskResponseDTO
// @Security BearerAuth
// @Router /tasks/{taskId} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var request UpdateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	task, err := c.taskService.UpdateTask(taskID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// DeleteTask
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param taskId path string true "Task ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /tasks/{taskId} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if err := c.taskService.DeleteTask(taskID, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
