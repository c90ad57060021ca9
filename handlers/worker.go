package handlers

import (
	"net/http"
	"strconv"

	"hireloop/models"
	"hireloop/services/storage"
	"hireloop/services/worker"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkerHandler serves the onboarding wizard, the worker's own profile and
// the public worker pages.
type WorkerHandler struct {
	WorkerService worker.WorkerService
	Storage       storage.StorageService
}

func NewWorkerHandler(workerSvc worker.WorkerService, storageSvc storage.StorageService) *WorkerHandler {
	return &WorkerHandler{WorkerService: workerSvc, Storage: storageSvc}
}

// GetOnboardingHandler handles GET /api/workers/me/onboarding.
func (h *WorkerHandler) GetOnboardingHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	state, err := h.WorkerService.GetWizardState(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitPersonalInfoHandler handles PUT /api/workers/me/onboarding/personal.
func (h *WorkerHandler) SubmitPersonalInfoHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	var req models.PersonalInfoRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.WorkerService.SubmitPersonalInfo(c.Request.Context(), userID, req)
	if err != nil {
		getLogger(c).Warn("personal info step failed", zap.String("workerID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SubmitServiceSelectionHandler handles PUT /api/workers/me/onboarding/service.
func (h *WorkerHandler) SubmitServiceSelectionHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	var req models.ServiceSelectionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.WorkerService.SubmitServiceSelection(c.Request.Context(), userID, req)
	if err != nil {
		getLogger(c).Warn("service step failed", zap.String("workerID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SubmitPricingHandler handles PUT /api/workers/me/onboarding/pricing.
func (h *WorkerHandler) SubmitPricingHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	var req models.PricingRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.WorkerService.SubmitPricing(c.Request.Context(), userID, req)
	if err != nil {
		getLogger(c).Warn("pricing step failed", zap.String("workerID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PricingPreviewHandler handles GET /api/workers/pricing/preview.
func (h *WorkerHandler) PricingPreviewHandler(c *gin.Context) {
	hourly, err := strconv.ParseFloat(c.Query("hourly_rate"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hourly_rate must be a number", "code": utils.ErrCodeValidation})
		return
	}
	minHours := 1
	if raw := c.Query("min_booking_hours"); raw != "" {
		if minHours, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_booking_hours must be an integer", "code": utils.ErrCodeValidation})
			return
		}
	}
	rate, err := h.WorkerService.PreviewRate(hourly, minHours)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// GetOwnProfileHandler handles GET /api/workers/me/profile.
func (h *WorkerHandler) GetOwnProfileHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	p, err := h.WorkerService.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler handles PATCH /api/workers/me/profile.
func (h *WorkerHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	var upd models.WorkerProfileUpdate
	if !bindJSON(c, &upd) {
		return
	}
	p, err := h.WorkerService.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		getLogger(c).Warn("profile update failed", zap.String("workerID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddImageHandler handles POST /api/workers/me/images (multipart: file, kind).
func (h *WorkerHandler) AddImageHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	kind := c.DefaultPostForm("kind", worker.ImageKindGallery)
	purpose := storage.PurposeGallery
	if kind == worker.ImageKindService {
		purpose = storage.PurposeService
	} else if kind != worker.ImageKindGallery {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be gallery or service", "code": utils.ErrCodeValidation})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "code": utils.ErrCodeValidation})
		return
	}
	result, err := h.Storage.UploadImage(c.Request.Context(), fileHeader, purpose)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	p, err := h.WorkerService.AddImage(c.Request.Context(), userID, kind, result.URL)
	if err != nil {
		getLogger(c).Warn("failed to attach image", zap.String("workerID", userID), zap.Error(err))
		discardImage(c, h.Storage, result.PublicID)
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.URL, "profile": p})
}

// RemoveImageHandler handles DELETE /api/workers/me/images?kind=&url=.
func (h *WorkerHandler) RemoveImageHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	imageURL := c.Query("url")
	p, err := h.WorkerService.RemoveImage(c.Request.Context(), userID, c.Query("kind"), imageURL)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardImage(c, h.Storage, imageURL)
	c.JSON(http.StatusOK, p)
}

// ListWorkersHandler handles GET /api/workers.
func (h *WorkerHandler) ListWorkersHandler(c *gin.Context) {
	var filter models.WorkerFilter
	if !bindQuery(c, &filter) {
		return
	}
	page, err := h.WorkerService.ListPublicWorkers(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetPublicProfileHandler handles GET /api/workers/:id.
func (h *WorkerHandler) GetPublicProfileHandler(c *gin.Context) {
	p, err := h.WorkerService.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListReviewsHandler handles GET /api/workers/:id/reviews.
func (h *WorkerHandler) ListReviewsHandler(c *gin.Context) {
	var page models.Pagination
	if !bindQuery(c, &page) {
		return
	}
	reviews, err := h.WorkerService.ListReviews(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CalendarHandler handles GET /api/workers/:id/bookings?month=YYYY-MM.
func (h *WorkerHandler) CalendarHandler(c *gin.Context) {
	entries, err := h.WorkerService.GetCalendar(c.Request.Context(), c.Param("id"), c.Query("month"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": entries})
}
