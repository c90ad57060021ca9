// File: hireloop/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hireloop/config"
	"hireloop/cron"
	"hireloop/database"
	"hireloop/database/repository"
	"hireloop/handlers"
	"hireloop/middleware"
	"hireloop/routes"
	"hireloop/services/admin"
	"hireloop/services/employer"
	"hireloop/services/notification"
	"hireloop/services/settings"
	"hireloop/services/storage"
	"hireloop/services/user"
	"hireloop/services/worker"
	"hireloop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := utils.FirebaseInit(rootCtx); err != nil {
		logger.Warn("main: firebase unavailable, push notifications disabled", zap.Error(err))
	}

	var store storage.ObjectStore
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Warn("main: cloudinary unavailable, uploads disabled", zap.Error(err))
	} else {
		store = storage.NewCloudinaryStore(cld)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(handlers.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.MaxMultipartMemory = utils.MaxUploadSize

	// repositories.
	repos := repository.NewMongoRepositories()
	tx := database.NewTransactor(database.MongoClient, config.AppConfig.MongoTransactions)

	// services.
	userService := &user.DefaultUserService{
		Repo:      repos.Users,
		Workers:   repos.Workers,
		Employers: repos.Employers,
		SiteURL:   config.AppConfig.SiteURL,
	}
	workerService := &worker.DefaultWorkerService{
		Users:   repos.Users,
		Workers: repos.Workers,
		Records: repos.Records,
		Tx:      tx,
	}
	employerService := &employer.DefaultEmployerService{Repo: repos.Employers}
	notificationService := notification.NewDefaultNotificationService(utils.FCMClient, repos.Users)
	adminService := &admin.DefaultAdminService{
		Users:     repos.Users,
		Workers:   repos.Workers,
		Employers: repos.Employers,
		Audit:     repos.Audit,
		Reports:   repos.Reports,
		Records:   repos.Records,
		Notifier:  notificationService,
	}
	settingsService := &settings.DefaultSettingsService{
		Repo: repos.Settings,
		TTL:  config.AppConfig.SettingsCacheTTL,
	}
	if redisClient := utils.GetCacheClient(); redisClient != nil {
		settingsService.Cache = settings.NewRedisSettingsCache(redisClient, utils.SettingsCacheKey)
	}
	storageService := storage.NewStorageService(store)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:        repos.Users,
		AdminSecretHash: config.AppConfig.AdminSecretHash,
		User:            handlers.NewUserHandler(userService, storageService),
		Worker:          handlers.NewWorkerHandler(workerService, storageService),
		Employer:        &handlers.EmployerHandler{EmployerService: employerService},
		Admin:           handlers.NewAdminHandler(adminService, storageService),
		Settings:        &handlers.SettingsHandler{SettingsService: settingsService},
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(rootCtx, 30*time.Second, utils.GetCacheClient(), database.MongoClient)
	cron.StartSuspensionSweeper(rootCtx, 5*time.Minute, map[string]cron.SuspensionReleaser{
		"worker_profiles":   repos.Workers,
		"employer_profiles": repos.Employers,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}
	if redisClient := utils.GetCacheClient(); redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("main: redis close failed", zap.Error(err))
		}
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
