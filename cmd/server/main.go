package main

import (
	"log"
	"net/http"

	_ "wallxy/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"wallxy/internal/auth"
	"wallxy/internal/cache"
	"wallxy/internal/config"
	"wallxy/internal/db"
	"wallxy/internal/handler"
	"wallxy/internal/model"
	"wallxy/internal/repository"
	"wallxy/internal/router"
	"wallxy/internal/service"
)

// @title Wallxy Marketplace API
// @version 1.0
// @description Job and freelance marketplace API with listings, submissions, and JWT authentication.
// @host localhost:8001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Project{},
		&model.Application{},
		&model.Proposal{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	proposalRepo := repository.NewProposalRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(jobRepo, userRepo)
	projectService := service.NewProjectService(projectRepo, userRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, userRepo, notificationRepo)
	proposalService := service.NewProposalService(proposalRepo, projectRepo, userRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	projectHandler := handler.NewProjectHandler(projectService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	proposalHandler := handler.NewProposalHandler(proposalService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		jobHandler,
		projectHandler,
		applicationHandler,
		proposalHandler,
		notificationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
