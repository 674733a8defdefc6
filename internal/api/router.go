package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/resumehub/resume-api/docs"
	"github.com/resumehub/resume-api/internal/api/handler"
	"github.com/resumehub/resume-api/internal/api/middleware"
	"github.com/resumehub/resume-api/internal/core/service"
	"github.com/resumehub/resume-api/internal/infrastructure/db/sqlite"
)

// Deps carries everything the router needs to assemble the service.
type Deps struct {
	DB     *sql.DB
	Hasher *service.PasswordHasher
	Tokens *service.TokenService
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("resume_api"))

	// --- Dependencies ---
	credentialRepo := sqlite.NewCredentialRepository(deps.DB)
	resumeRepo := sqlite.NewResumeRepository(deps.DB)
	authService := service.NewAuthService(credentialRepo, deps.Hasher, deps.Tokens, deps.Log)
	resumeService := service.NewResumeService(resumeRepo, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	healthHandler := handler.NewHealthHandler(deps.DB)
	authMiddleware := middleware.Auth(deps.Tokens)

	// --- Public routes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	resumes := e.Group("/resumes", authMiddleware)
	resumes.POST("", resumeHandler.Create)
	resumes.GET("", resumeHandler.List)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
