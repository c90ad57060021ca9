package routes

import (
	"slices"
	"time"

	"hireloop/config"
	"hireloop/handlers"
	"hireloop/middleware"
	"hireloop/models"
	"hireloop/services/admin"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and the OAuth callback.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/auth/callback", hb.User.OAuthCallbackHandler)

	api := r.Group("/api/auth")
	{
		api.POST("/create-user-profile", middleware.SessionAuth(nil), hb.User.CreateUserProfileHandler)
		api.GET("/create-user-profile", hb.User.UserExistsHandler)
	}
}

// RegisterUserRoutes registers session-scoped account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	session := middleware.SessionAuth(nil)

	r.POST("/api/upload-avatar", session, hb.User.UploadAvatarHandler)
	r.POST("/api/reports", session, hb.Admin.CreateReportHandler)

	api := r.Group("/api/users")
	{
		api.Use(session)
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me/fcm-token", hb.User.UpdateFCMTokenHandler)
	}
}

// RegisterWorkerRoutes registers the wizard, the own-profile editor and the
// public worker pages.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workers")
	{
		api.GET("", hb.Worker.ListWorkersHandler)
		api.GET("/pricing/preview", hb.Worker.PricingPreviewHandler)
		api.GET("/:id", hb.Worker.GetPublicProfileHandler)
		api.GET("/:id/reviews", hb.Worker.ListReviewsHandler)
		api.GET("/:id/bookings", hb.Worker.CalendarHandler)

		me := api.Group("/me")
		me.Use(middleware.SessionAuth(nil), middleware.RequireRole(hb.UserRepo, models.RoleWorker))
		me.GET("/onboarding", hb.Worker.GetOnboardingHandler)
		me.PUT("/onboarding/personal", hb.Worker.SubmitPersonalInfoHandler)
		me.PUT("/onboarding/service", hb.Worker.SubmitServiceSelectionHandler)
		me.PUT("/onboarding/pricing", hb.Worker.SubmitPricingHandler)
		me.GET("/profile", hb.Worker.GetOwnProfileHandler)
		me.PATCH("/profile", hb.Worker.UpdateProfileHandler)
		me.POST("/images", hb.Worker.AddImageHandler)
		me.DELETE("/images", hb.Worker.RemoveImageHandler)
	}
}

// RegisterEmployerRoutes registers the employer profile editor.
func RegisterEmployerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	me := r.Group("/api/employers/me")
	{
		me.Use(middleware.SessionAuth(nil), middleware.RequireRole(hb.UserRepo, models.RoleEmployer))
		me.GET("/profile", hb.Employer.GetProfileHandler)
		me.PUT("/profile", hb.Employer.UpdateProfileHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations. Every route but
// the settings read goes through the admin capability.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/admin/settings", hb.Settings.GetSettingsHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminCapability(hb.UserRepo, hb.AdminSecretHash, nil))
		adminGroup.PATCH("/settings", hb.Settings.UpdateSettingsHandler)
		adminGroup.POST("/upload", hb.Admin.UploadHandler)
		adminGroup.GET("/stats", hb.Admin.StatsHandler)
		adminGroup.GET("/actions", hb.Admin.ListActionsHandler)

		adminGroup.GET("/workers", hb.Admin.ListWorkersHandler)
		for _, verb := range []string{admin.VerbApprove, admin.VerbReject, admin.VerbSuspend, admin.VerbBan, admin.VerbWarn} {
			adminGroup.POST("/workers/:id/"+verb, hb.Admin.ModerateWorker(verb))
		}

		adminGroup.GET("/employers", hb.Admin.ListEmployersHandler)
		for _, verb := range []string{admin.VerbSuspend, admin.VerbBan, admin.VerbWarn} {
			adminGroup.POST("/employers/:id/"+verb, hb.Admin.ModerateEmployer(verb))
		}

		adminGroup.GET("/reports", hb.Admin.ListReportsHandler)
		adminGroup.POST("/reports/:id/resolve", hb.Admin.ResolveReport(admin.VerbResolve))
		adminGroup.POST("/reports/:id/dismiss", hb.Admin.ResolveReport(admin.VerbDismiss))
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.AdminSecretHeader, "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	origins := config.AllowedOrigins()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig()))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterWorkerRoutes(r, hb)
	RegisterEmployerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
