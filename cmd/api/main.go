package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"resume-builder-backend/config"
	v1 "resume-builder-backend/internal/delivery/http/v1"
	"resume-builder-backend/internal/repository/postgres"
	"resume-builder-backend/internal/usecase"
	"resume-builder-backend/pkg/auth"
	"resume-builder-backend/pkg/database"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/redis"
	"resume-builder-backend/pkg/validation"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume builder backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional - rate limiting falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	templateRepo := postgres.NewTemplateRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	tokens := auth.NewTokenManager(cfg.TokenKey)

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	adminAuthUC := usecase.NewAdminAuthUsecase(adminRepo, tokens)
	mgmtUC := usecase.NewAdminManagementUsecase(adminRepo, userRepo, profileRepo, resumeRepo, templateRepo, cfg.DefaultPageLimit)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo, resumeRepo, validate)
	resumeUC := usecase.NewResumeUsecase(userRepo, resumeRepo)
	templateUC := usecase.NewTemplateUsecase(templateRepo, resumeRepo, cfg.DefaultPageLimit)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		AdminAuthUC: adminAuthUC,
		MgmtUC:      mgmtUC,
		ProfileUC:   profileUC,
		ResumeUC:    resumeUC,
		TemplateUC:  templateUC,
		HealthUC:    healthUC,
		Tokens:      tokens,
		UserRepo:    userRepo,
		AdminRepo:   adminRepo,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
