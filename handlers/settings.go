package handlers

import (
	"net/http"

	"hireloop/models"
	"hireloop/services/settings"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	SettingsService settings.SettingsService
}

// GetSettingsHandler handles GET /api/admin/settings. It is public.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	snapshot, err := h.SettingsService.GetSnapshot(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// UpdateSettingsHandler handles PATCH /api/admin/settings.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	var patch models.SettingsPatch
	if !bindJSON(c, &patch) {
		return
	}
	updatedBy := c.GetString(utils.CtxAdminEmail)
	if updatedBy == "" {
		updatedBy = c.GetString(utils.CtxAdminVia)
	}
	snapshot, err := h.SettingsService.Update(c.Request.Context(), patch, updatedBy)
	if err != nil {
		getLogger(c).Error("settings update failed", zap.String("updatedBy", updatedBy), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
