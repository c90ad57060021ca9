package handlers

import (
	"net/http"

	"hireloop/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health. Redis being down degrades nothing
// but the settings cache, so only Mongo decides the status code.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()
	code, status := http.StatusOK, "ok"
	if !health.Healthy() {
		code, status = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(code, gin.H{"status": status, "health": health})
}
