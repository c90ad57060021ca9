package middleware

import (
	"net/http"
	"strings"

	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenParser validates a bearer token.
type TokenParser func(token string) (*utils.SessionClaims, error)

func parserOrDefault(parse TokenParser) TokenParser {
	if parse == nil {
		return utils.ParseSessionToken
	}
	return parse
}

// bearerToken returns the token of an "Authorization: Bearer" header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// SessionAuth requires a valid session token and stores the user id in the
// context.
func SessionAuth(parse TokenParser) gin.HandlerFunc {
	parse = parserOrDefault(parse)
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header", "code": utils.ErrCodeUnauthorized})
			return
		}
		claims, err := parse(token)
		if err != nil {
			zap.L().Debug("session token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session", "code": utils.ErrCodeUnauthorized})
			return
		}
		c.Set(utils.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalSession sets the user id when a valid token is present and lets
// anonymous requests through.
func OptionalSession(parse TokenParser) gin.HandlerFunc {
	parse = parserOrDefault(parse)
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := parse(token); err == nil {
				c.Set(utils.CtxUserID, claims.UserID)
			}
		}
		c.Next()
	}
}
