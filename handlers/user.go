package handlers

import (
	"net/http"

	"hireloop/models"
	"hireloop/services/storage"
	"hireloop/services/user"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, the OAuth callback and account endpoints.
type UserHandler struct {
	UserService user.UserService
	Storage     storage.StorageService
}

func NewUserHandler(userSvc user.UserService, storageSvc storage.StorageService) *UserHandler {
	return &UserHandler{UserService: userSvc, Storage: storageSvc}
}

// CreateUserProfileHandler handles POST /api/auth/create-user-profile.
// The session must belong to the user being registered.
func (h *UserHandler) CreateUserProfileHandler(c *gin.Context) {
	sessionID, ok := sessionUserID(c)
	if !ok {
		return
	}
	var req models.CreateUserProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.UserID != sessionID {
		getLogger(c).Warn("profile creation for another user refused",
			zap.String("sessionUserID", sessionID), zap.String("userID", req.UserID))
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only create your own profile", "code": utils.ErrCodeForbidden})
		return
	}
	u, created, err := h.UserService.CreateUserProfile(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Error("Create user profile failed", zap.String("userID", req.UserID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "created": created, "user": u})
}

// UserExistsHandler handles GET /api/auth/create-user-profile?userId=.
func (h *UserHandler) UserExistsHandler(c *gin.Context) {
	exists, err := h.UserService.UserExists(c.Request.Context(), c.Query("userId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// OAuthCallbackHandler handles GET /auth/callback and always redirects.
func (h *UserHandler) OAuthCallbackHandler(c *gin.Context) {
	target := h.UserService.HandleOAuthCallback(c.Request.Context(), c.Query("access_token"), c.Query("role"))
	c.Redirect(http.StatusFound, target)
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	u, err := h.UserService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateFCMTokenHandler handles PUT /api/users/me/fcm-token.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.UserService.UpdateFCMToken(c.Request.Context(), userID, req.Token); err != nil {
		getLogger(c).Error("Failed to update FCM token", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadAvatarHandler handles POST /api/upload-avatar.
func (h *UserHandler) UploadAvatarHandler(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "code": utils.ErrCodeValidation})
		return
	}
	result, err := h.Storage.UploadImage(c.Request.Context(), fileHeader, storage.PurposeAvatar)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := h.UserService.UpdateAvatar(c.Request.Context(), userID, result.URL); err != nil {
		getLogger(c).Error("Failed to save avatar", zap.String("userID", userID), zap.Error(err))
		discardImage(c, h.Storage, result.PublicID)
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": result.URL})
}
