package middleware

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
)

// RoleResolver maps a verified caller email to its stored role.
type RoleResolver interface {
	ResolveRole(email string) (string, error)
}

// AdminGuard requires the admin role for the claim attached by AuthGuard.
// It must run after AuthGuard on the route: without an attached claim there
// is nothing to resolve and the request is rejected.
func AdminGuard(roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := ClaimEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		role, err := roles.ResolveRole(email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				// Valid token for a not-yet-provisioned user.
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to resolve role"})
			return
		}

		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
