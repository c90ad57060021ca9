package middleware

import (
	"net/http"

	userRepo "hireloop/database/repository/user"
	"hireloop/models"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminSecretHeader carries the shared admin secret.
const AdminSecretHeader = "x-admin-secret"

// Values of the adminVia context key.
const (
	AdminViaSecret  = "secret"
	AdminViaSession = "session"
)

// AdminCapability is the gate for every admin route. A request passes with
// the shared secret or with a session whose user has the admin role.
func AdminCapability(users userRepo.UserRepository, secretHash string, parse TokenParser) gin.HandlerFunc {
	parse = parserOrDefault(parse)
	return func(c *gin.Context) {
		logger := zap.L()

		if secret := c.GetHeader(AdminSecretHeader); secret != "" {
			if secretHash != "" && bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(secret)) == nil {
				c.Set(utils.CtxAdminVia, AdminViaSecret)
				c.Next()
				return
			}
			logger.Warn("admin secret mismatch", zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials", "code": utils.ErrCodeUnauthorized})
			return
		}

		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": utils.ErrCodeUnauthorized})
			return
		}
		claims, err := parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session", "code": utils.ErrCodeUnauthorized})
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Error("admin check: user lookup failed", zap.String("userID", claims.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify admin access", "code": utils.ErrCodeDatabase})
			return
		}
		if u == nil || u.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required", "code": utils.ErrCodeForbidden})
			return
		}

		c.Set(utils.CtxUserID, u.ID)
		c.Set(utils.CtxAdminID, u.ID)
		c.Set(utils.CtxAdminEmail, u.Email)
		c.Set(utils.CtxAdminVia, AdminViaSession)
		c.Next()
	}
}

// SessionActor returns the admin resolved by AdminCapability. It is empty
// for shared-secret requests.
func SessionActor(c *gin.Context) models.Actor {
	return models.Actor{ID: c.GetString(utils.CtxAdminID), Email: c.GetString(utils.CtxAdminEmail)}
}
