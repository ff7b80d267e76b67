package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// ClaimEmailKey is the gin context key under which AuthGuard stores the
// verified caller email for the rest of the request.
const ClaimEmailKey = "claimEmail"

// AuthGuard verifies the bearer credential on the request. A missing or
// malformed Authorization header aborts with 401; a forged or expired token
// aborts with 403. On success the email claim is attached to the context.
func AuthGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ClaimEmailKey, email)
		c.Next()
	}
}

// ClaimEmail returns the verified caller email attached by AuthGuard.
func ClaimEmail(c *gin.Context) (string, bool) {
	val, exists := c.Get(ClaimEmailKey)
	if !exists {
		return "", false
	}
	email, ok := val.(string)
	return email, ok && email != ""
}
