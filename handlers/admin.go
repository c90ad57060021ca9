package handlers

import (
	"net/http"

	"hireloop/middleware"
	"hireloop/models"
	"hireloop/services/admin"
	"hireloop/services/storage"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the moderation console.
type AdminHandler struct {
	AdminService admin.AdminService
	Storage      storage.StorageService
}

func NewAdminHandler(adminSvc admin.AdminService, storageSvc storage.StorageService) *AdminHandler {
	return &AdminHandler{AdminService: adminSvc, Storage: storageSvc}
}

// ModerateWorker returns the handler of POST /api/admin/workers/:id/<verb>.
func (h *AdminHandler) ModerateWorker(verb string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, actionType, ok := bindModeration(c, models.TargetWorker, verb)
		if !ok {
			return
		}
		workerID := c.Param("id")
		p, err := h.AdminService.ModerateWorker(c.Request.Context(), workerID, actionType, req, middleware.SessionActor(c))
		if err != nil {
			getLogger(c).Warn("worker moderation failed", zap.String("workerID", workerID), zap.String("action", actionType), zap.Error(err))
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "action": actionType, "worker": p})
	}
}

// ModerateEmployer returns the handler of POST /api/admin/employers/:id/<verb>.
func (h *AdminHandler) ModerateEmployer(verb string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, actionType, ok := bindModeration(c, models.TargetEmployer, verb)
		if !ok {
			return
		}
		employerID := c.Param("id")
		p, err := h.AdminService.ModerateEmployer(c.Request.Context(), employerID, actionType, req, middleware.SessionActor(c))
		if err != nil {
			getLogger(c).Warn("employer moderation failed", zap.String("employerID", employerID), zap.String("action", actionType), zap.Error(err))
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "action": actionType, "employer": p})
	}
}

// ResolveReport returns the handler of POST /api/admin/reports/:id/<verb>.
func (h *AdminHandler) ResolveReport(verb string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, actionType, ok := bindModeration(c, models.TargetReport, verb)
		if !ok {
			return
		}
		r, err := h.AdminService.ResolveReport(c.Request.Context(), c.Param("id"), actionType, req, middleware.SessionActor(c))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "action": actionType, "report": r})
	}
}

func bindModeration(c *gin.Context, targetType, verb string) (models.ModerationRequest, string, bool) {
	var req models.ModerationRequest
	if !bindOptionalJSON(c, &req) {
		return req, "", false
	}
	actionType, err := admin.ResolveAction(targetType, verb, req.Action)
	if err != nil {
		utils.RespondError(c, err)
		return req, "", false
	}
	return req, actionType, true
}

// ListWorkersHandler handles GET /api/admin/workers.
func (h *AdminHandler) ListWorkersHandler(c *gin.Context) {
	var filter models.WorkerFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.AdminService.ListWorkers(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListEmployersHandler handles GET /api/admin/employers.
func (h *AdminHandler) ListEmployersHandler(c *gin.Context) {
	var filter models.EmployerFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.AdminService.ListEmployers(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListActionsHandler handles GET /api/admin/actions.
func (h *AdminHandler) ListActionsHandler(c *gin.Context) {
	var filter models.ActionFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.AdminService.ListActions(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListReportsHandler handles GET /api/admin/reports.
func (h *AdminHandler) ListReportsHandler(c *gin.Context) {
	var filter models.ReportFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.AdminService.ListReports(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// StatsHandler handles GET /api/admin/stats.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.AdminService.GetStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UploadHandler handles POST /api/admin/upload.
func (h *AdminHandler) UploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "code": utils.ErrCodeValidation})
		return
	}
	result, err := h.Storage.UploadImage(c.Request.Context(), fileHeader, storage.PurposeAdmin)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": result.URL, "public_id": result.PublicID})
}

// CreateReportHandler handles POST /api/reports.
func (h *AdminHandler) CreateReportHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	var req models.CreateReportRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.AdminService.CreateReport(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
