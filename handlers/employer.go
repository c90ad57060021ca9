package handlers

import (
	"net/http"

	"hireloop/models"
	"hireloop/services/employer"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmployerHandler struct {
	EmployerService employer.EmployerService
}

// GetProfileHandler handles GET /api/employers/me/profile.
func (h *EmployerHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	p, err := h.EmployerService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler handles PUT /api/employers/me/profile.
func (h *EmployerHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	var upd models.EmployerProfileUpdate
	if !bindJSON(c, &upd) {
		return
	}
	p, err := h.EmployerService.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		getLogger(c).Warn("employer profile update failed", zap.String("employerID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
