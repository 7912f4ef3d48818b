package users_controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	users_dto "cofoundry/internal/features/users/dto"
	users_middleware "cofoundry/internal/features/users/middleware"
	users_services "cofoundry/internal/features/users/services"
)

type UserController struct {
	userService    *users_services.UserService
	profileService *users_services.ProfileService

	signInLimiters   map[string]*rate.Limiter
	signInLimitersMu sync.Mutex
}

func (c *UserController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/users/signup", c.SignUp)
	router.POST("/users/signin", c.SignIn)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetCurrentUser)
	router.GET("/users/profile/:userId", c.GetProfile)
	router.PUT("/users/profile", c.UpdateProfile)
	router.PUT("/users/password", c.ChangePassword)
}

// SignUp
// @Summary Register a new user
// @Description Create a user account with a profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignUpRequestDTO true "Sign up request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /users/signup [post]
func (c *UserController) SignUp(ctx *gin.Context) {
	var request users_dto.SignUpRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := c.userService.SignUp(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "user created successfully"})
}

// SignIn
// @Summary Sign in
// @Description Exchange credentials for an access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignInRequestDTO true "Sign in request"
// @Success 200 {object} users_dto.SignInResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /users/signin [post]
func (c *UserController) SignIn(ctx *gin.Context) {
	if !c.allowSignIn(ctx.ClientIP()) {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "too many sign in attempts, try again later"})
		return
	}

	var request users_dto.SignInRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	response, err := c.userService.SignIn(&request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCurrentUser
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	profile, err := c.profileService.GetProfile(user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GetProfile
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /users/profile/{userId} [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, err := parseUUIDParam(ctx, "userId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	profile, err := c.profileService.GetProfile(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile
// @Summary Update the current user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.UpdateProfileRequestDTO true "Profile update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var request users_dto.UpdateProfileRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := c.profileService.UpdateProfile(user.ID, &request); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// ChangePassword
// @Summary Change the current user's password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.ChangePasswordRequestDTO true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /users/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	user := users_middleware.GetUserFromContext(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var request users_dto.ChangePasswordRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := c.userService.ChangeUserPassword(user.ID, request.NewPassword); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change password"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (c *UserController) allowSignIn(clientIP string) bool {
	c.signInLimitersMu.Lock()
	defer c.signInLimitersMu.Unlock()

	limiter, exists := c.signInLimiters[clientIP]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(1), 5)
		c.signInLimiters[clientIP] = limiter
	}

	return limiter.Allow()
}
