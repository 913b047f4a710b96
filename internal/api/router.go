package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/storyweave/storyweave-api/internal/api/handler"
	"github.com/storyweave/storyweave-api/internal/api/middleware"
	"github.com/storyweave/storyweave-api/internal/core/auth"
	"github.com/storyweave/storyweave-api/internal/core/service"
	"github.com/storyweave/storyweave-api/internal/infrastructure/config"
	storemongo "github.com/storyweave/storyweave-api/internal/infrastructure/db/mongo"
	storeredis "github.com/storyweave/storyweave-api/internal/infrastructure/db/redis"
	"github.com/storyweave/storyweave-api/internal/infrastructure/translate"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongodriver.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, !cfg.IsProduction())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storyweave"))

	// --- Dependencies ---
	userRepo := storemongo.NewUserRepository(db)
	storyRepo := storemongo.NewStoryRepository(db)

	hasher := auth.NewPasswordHasher(0) // bcrypt.DefaultCost
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL)
	throttle := storeredis.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	translator := translate.NewClient(translate.Config{
		BaseURL: cfg.Translate.BaseURL,
		APIKey:  cfg.Translate.APIKey,
		Timeout: cfg.Translate.Timeout,
	}, log)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	storyService := service.NewStoryService(storyRepo, translator, log)
	translateService := service.NewTranslateService(translator, log)

	authHandler := handler.NewAuthHandler(authService, throttle, log)
	storyHandler := handler.NewStoryHandler(storyService)
	translateHandler := handler.NewTranslateHandler(translateService)

	requireAuth := middleware.Auth(tokens, userRepo, log)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, requireAuth)
	e.PUT("/auth/profile", authHandler.UpdateProfile, requireAuth)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)

	// --- Story routes ---
	stories := e.Group("/v1/stories", requireAuth)
	stories.POST("", storyHandler.Create)
	stories.GET("", storyHandler.List)
	stories.GET("/:id", storyHandler.Get)
	stories.PUT("/:id", storyHandler.Update)
	stories.DELETE("/:id", storyHandler.Delete)

	// --- Translation proxy ---
	e.POST("/v1/translate", translateHandler.Translate, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
