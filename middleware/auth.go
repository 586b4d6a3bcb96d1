package middleware

import (
	"log"
	"net/http"
	"strings"

	"newsroom/utils"

	"github.com/gin-gonic/gin"
)

// OperatorKey is the context key holding the token subject.
const OperatorKey = "operator"

// AuthRequired accepts requests carrying a valid "Bearer <jwt>" header
// signed with secret.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		operator, err := utils.ValidateJWT(secret, token)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(OperatorKey, operator)
		c.Next()
	}
}
