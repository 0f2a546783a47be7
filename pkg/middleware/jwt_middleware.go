package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentwise/internal/models/request_models"
	"rentwise/pkg/utils"
)

const callerKey = "caller"

// JWTAuthMiddleware resolves the caller from a bearer token signed by the identity provider.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			utils.LoggerFrom(c).Debug("rejected bearer token", zap.Error(err))
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(callerKey, request_models.Caller{
			UserID:          claims.Subject,
			Role:            claims.Role,
			FirstName:       claims.FirstName,
			LastName:        claims.LastName,
			Email:           claims.Email,
			ProfileImageURL: claims.ProfileImageURL,
		})
		c.Set("user_id", claims.Subject)
		c.Set("Role", claims.Role)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("Role")

		if role != requiredRole {
			utils.AbortWithError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			return
		}

		c.Next()
	}
}

// CallerFrom returns the identity stored by JWTAuthMiddleware.
func CallerFrom(c *gin.Context) (request_models.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return request_models.Caller{}, false
	}
	caller, ok := v.(request_models.Caller)
	return caller, ok
}
