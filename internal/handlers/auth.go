package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/enrollment-service/internal/services"
)

// AuthMiddleware verifies bearer tokens and enforces identity matching.
type AuthMiddleware struct {
	tokens services.TokenService
}

func NewAuthMiddleware(tokens services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireToken rejects requests without a valid bearer token and stores the
// verified email under user_email. Both failure shapes answer 401 with the
// exact body the frontend checks for.
func (am *AuthMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "Unauthorized Access",
			})
			return
		}

		// "Bearer <token>"; a malformed header verifies as garbage and
		// fails the same way a forged token does.
		token := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			token = parts[1]
		}

		email, err := am.tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "Unauthorized Access",
			})
			return
		}

		c.Set("user_email", email)
		c.Next()
	}
}

// RequireSameEmail rejects requests whose verified identity differs from
// the named path parameter. Runs after RequireToken.
func (am *AuthMiddleware) RequireSameEmail(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("user_email")
		if email == "" || email != c.Param(param) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   true,
				"message": "Forbidden Access",
			})
			return
		}
		c.Next()
	}
}
