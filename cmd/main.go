package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"cofoundry/internal/config"
	"cofoundry/internal/features/activity"
	"cofoundry/internal/features/applications"
	"cofoundry/internal/features/chat"
	"cofoundry/internal/features/healthcheck"
	"cofoundry/internal/features/ideas"
	projects_controllers "cofoundry/internal/features/projects/controllers"
	"cofoundry/internal/features/tasks"
	users_controllers "cofoundry/internal/features/users/controllers"
	users_middleware "cofoundry/internal/features/users/middleware"
	"cofoundry/internal/storage"
	cache_utils "cofoundry/internal/util/cache"
	env_utils "cofoundry/internal/util/env"
	"cofoundry/internal/util/logger"
	_ "cofoundry/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Cofoundry Backend API
// @version 1.0
// @description API for the Cofoundry startup collaboration platform

// @host localhost:4010
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.GetLogger()

	setUpDependencies()

	runMigrations(log)

	cache_utils.TestCacheConnection()

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		// Don't compress already compressed files
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

// setUpDependencies wires cross-feature hooks. Registration order of
// deletion listeners matters: applications, ideas, chat, tasks run in
// that order during cascade deletion.
func setUpDependencies() {
	applications.SetupDependencies()
	ideas.SetupDependencies()
	chat.SetupDependencies()
	tasks.SetupDependencies()
	activity.SetupDependencies()
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Mount Swagger UI
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthcheck.GetHealthcheckController().RegisterPublicRoutes(v1)

	userController := users_controllers.GetUserController()
	userController.RegisterPublicRoutes(v1)

	// Public reads see the caller when a token is present so listings
	// can include per-caller application status.
	public := v1.Group("")
	public.Use(users_middleware.OptionalAuthMiddleware())

	projectController := projects_controllers.GetProjectController()
	projectController.RegisterPublicRoutes(public)
	ideas.GetIdeaController().RegisterPublicRoutes(public)
	chat.GetChatController().RegisterPublicRoutes(public)

	// Protected routes
	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware())

	userController.RegisterProtectedRoutes(protected)
	projectController.RegisterProtectedRoutes(protected)
	applications.GetApplicationController().RegisterProtectedRoutes(protected)
	ideas.GetIdeaController().RegisterProtectedRoutes(protected)
	chat.GetChatController().RegisterProtectedRoutes(protected)
	tasks.GetTaskController().RegisterProtectedRoutes(protected)
	activity.GetActivityController().RegisterProtectedRoutes(protected)
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	// Connecting runs AutoMigrate for every registered model.
	if db := storage.GetDb(); db == nil {
		log.Error("Failed to connect to database")
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"Access-Control-Allow-Methods",
				"Access-Control-Allow-Headers",
				"Access-Control-Allow-Origin",
			},
			AllowCredentials: true,
		}))
	}
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + config.GetEnv().ListenAddr,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}
