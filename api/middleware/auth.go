package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/structech/survey-api/api/types"
	"github.com/structech/survey-api/internal/models"
	"github.com/structech/survey-api/internal/services/auth"
)

const claimsKey = "claims"

// RequireAuth validates the bearer token and stores its claims on the context
func RequireAuth(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			types.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			types.SendUnauthorized(c, "Authorization header must use the Bearer scheme")
			c.Abort()
			return
		}

		claims, err := deps.AuthService.VerifyAccessToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				types.SendUnauthorized(c, "Token expired")
			} else {
				types.SendUnauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			types.SendForbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Claims returns the verified claims stored by RequireAuth, or nil
func Claims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}
