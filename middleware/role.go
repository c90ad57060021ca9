package middleware

import (
	"net/http"

	userRepo "hireloop/database/repository/user"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireRole lets the request through when the session user's record has
// one of roles. It must run after SessionAuth.
func RequireRole(users userRepo.UserRepository, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		userID := c.GetString(utils.CtxUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": utils.ErrCodeUnauthorized})
			return
		}
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			zap.L().Error("role check: user lookup failed", zap.String("userID", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role", "code": utils.ErrCodeDatabase})
			return
		}
		if u == nil || !allowed[u.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions", "code": utils.ErrCodeForbidden})
			return
		}
		c.Set(utils.CtxUserRole, u.Role)
		c.Next()
	}
}
