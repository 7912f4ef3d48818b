package users_controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	users_services "cofoundry/internal/features/users/services"
)

var userController = &UserController{
	userService:    users_services.GetUserService(),
	profileService: users_services.GetProfileService(),
	signInLimiters: make(map[string]*rate.Limiter),
}

func GetUserController() *UserController {
	return userController
}

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(ctx.Param(name))
}
