package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wallxy/internal/config"
	"wallxy/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	jobHandler *handler.JobHandler,
	projectHandler *handler.ProjectHandler,
	applicationHandler *handler.ApplicationHandler,
	proposalHandler *handler.ProposalHandler,
	notificationHandler *handler.NotificationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/jobs", jobHandler.ListJobs)
	api.GET("/jobs/:id", jobHandler.GetJob)
	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/projects/:id", projectHandler.GetProject)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/auth/me", authHandler.Me)
	secured.PUT("/users/:id", userHandler.UpdateUser)

	// Listing routes
	secured.POST("/jobs", jobHandler.CreateJob)
	secured.PUT("/jobs/:id", jobHandler.UpdateJob)
	secured.DELETE("/jobs/:id", jobHandler.DeleteJob)
	secured.POST("/projects", projectHandler.CreateProject)
	secured.PUT("/projects/:id", projectHandler.UpdateProject)
	secured.DELETE("/projects/:id", projectHandler.DeleteProject)

	// Submission routes
	secured.POST("/applications", applicationHandler.CreateApplication)
	secured.GET("/applications/my", applicationHandler.MyApplications)
	secured.GET("/applications/job/:job_id", applicationHandler.JobApplications)
	secured.PUT("/applications/:id", applicationHandler.UpdateStatus)
	secured.POST("/proposals", proposalHandler.CreateProposal)
	secured.GET("/proposals/my", proposalHandler.MyProposals)
	secured.GET("/proposals/project/:project_id", proposalHandler.ProjectProposals)
	secured.PUT("/proposals/:id", proposalHandler.UpdateStatus)

	// Notification routes
	secured.GET("/notifications", notificationHandler.MyNotifications)
	secured.PUT("/notifications/:id/read", notificationHandler.MarkRead)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
