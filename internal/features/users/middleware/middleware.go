package users_middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	users_models "cofoundry/internal/features/users/models"
	users_services "cofoundry/internal/features/users/services"
)

const userContextKey = "currentUser"

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "authorization token is required"})
			return
		}

		user, err := users_services.GetUserService().GetUserFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is present and
// lets the request through anonymously otherwise.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" {
			if user, err := users_services.GetUserService().GetUserFromToken(token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

func GetUserFromContext(c *gin.Context) *users_models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}

	user, ok := value.(*users_models.User)
	if !ok {
		return nil
	}

	return user
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
