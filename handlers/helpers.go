package handlers

import (
	"errors"
	"io"
	"net/http"

	"hireloop/services/storage"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionUserID returns the id set by the session middleware.
func sessionUserID(c *gin.Context) (string, bool) {
	id := c.GetString(utils.CtxUserID)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": utils.ErrCodeUnauthorized})
		return "", false
	}
	return id, true
}

// bindJSON decodes the body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err), "code": utils.ErrCodeValidation})
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for endpoints whose body may be empty.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err), "code": utils.ErrCodeValidation})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err), "code": utils.ErrCodeValidation})
		return false
	}
	return true
}

// discardImage deletes a stored image nothing references any more. Failures
// only leave an orphan behind, so they are logged.
func discardImage(c *gin.Context, store storage.StorageService, ref string) {
	if err := store.DeleteImage(c.Request.Context(), ref); err != nil {
		getLogger(c).Warn("failed to delete stored image", zap.String("ref", ref), zap.Error(err))
	}
}
