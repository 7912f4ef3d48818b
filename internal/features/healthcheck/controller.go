package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.GetHealth)
}

// GetHealth
// @Summary Service health report
// @Tags system
// @Produce json
// @Success 200 {object} healthcheck.HealthReport
// @Failure 503 {object} healthcheck.HealthReport
// @Router /health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	report := c.healthcheckService.CheckHealth()

	status := http.StatusOK
	if !report.Healthy {
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, report)
}
