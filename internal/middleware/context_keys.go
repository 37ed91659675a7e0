package middleware

import (
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// userIDKey stores the authenticated user's ID in the request context.
	userIDKey = contextKey("userID")
	// userRoleKey stores the authenticated user's role in the request context.
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetActorFromContext builds the acting identity from the authenticated
// request. It returns false when the request carries no authenticated user.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role := domain.RoleDonor
	if roleVal, ok := c.Request.Context().Value(userRoleKey).(domain.UserRole); ok {
		role = roleVal
	}
	return domain.Actor{UserID: userID, Role: role}, true
}
