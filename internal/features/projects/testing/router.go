package projects_testing

import (
	"github.com/gin-gonic/gin"

	users_middleware "cofoundry/internal/features/users/middleware"
)

type PublicController interface {
	RegisterPublicRoutes(router *gin.RouterGroup)
}

type ProtectedController interface {
	RegisterProtectedRoutes(router *gin.RouterGroup)
}

// CreateTestRouter builds a router with the same middleware split as the
// real server: public routes behind optional auth, the rest behind
// required auth. Controllers register whichever surfaces they implement.
func CreateTestRouter(controllers ...any) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	public := v1.Group("")
	public.Use(users_middleware.OptionalAuthMiddleware())

	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware())

	for _, controller := range controllers {
		if publicController, ok := controller.(PublicController); ok {
			publicController.RegisterPublicRoutes(public)
		}
		if protectedController, ok := controller.(ProtectedController); ok {
			protectedController.RegisterProtectedRoutes(protected)
		}
	}

	return router
}
