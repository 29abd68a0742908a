package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/structech/survey-api/api/auth"
	"github.com/structech/survey-api/api/blocks"
	"github.com/structech/survey-api/api/cracks"
	"github.com/structech/survey-api/api/designmaps"
	"github.com/structech/survey-api/api/health"
	"github.com/structech/survey-api/api/projects"
	"github.com/structech/survey-api/api/types"
	"github.com/structech/survey-api/api/users"
	"github.com/structech/survey-api/api/version"
	_ "github.com/structech/survey-api/docs/swagger"
	authservice "github.com/structech/survey-api/internal/services/auth"
	blocksservice "github.com/structech/survey-api/internal/services/blocks"
	cracksservice "github.com/structech/survey-api/internal/services/cracks"
	designmapsservice "github.com/structech/survey-api/internal/services/designmaps"
	filesservice "github.com/structech/survey-api/internal/services/files"
	projectsservice "github.com/structech/survey-api/internal/services/projects"
	usersservice "github.com/structech/survey-api/internal/services/users"
	"github.com/structech/survey-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.DB == nil || deps.DB.DB == nil {
		return fmt.Errorf("database is required before route registration")
	}
	initializeServices(deps, cfg)

	limit := func(rps, burst int) gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}

	generalRPS := cfg.RateLimiting.RPS
	if generalRPS <= 0 {
		generalRPS = 10
	}
	generalBurst := cfg.RateLimiting.Burst
	if generalBurst <= 0 {
		generalBurst = 20
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Register auth routes with dedicated rate limiting (5 req/s, burst of 10)
	// to slow down credential guessing
	authGroup := v1.Group("/auth")
	authGroup.Use(limit(5, 10))
	auth.RegisterRoutes(authGroup, deps)

	userGroup := v1.Group("/users")
	userGroup.Use(limit(generalRPS, generalBurst))
	users.RegisterRoutes(userGroup, deps)

	projectGroup := v1.Group("/projects")
	projectGroup.Use(limit(generalRPS, generalBurst))
	projects.RegisterRoutes(projectGroup, deps)

	blockGroup := v1.Group("/blocks")
	blockGroup.Use(limit(generalRPS, generalBurst))
	blocks.RegisterRoutes(blockGroup, deps)

	crackGroup := v1.Group("/cracks")
	crackGroup.Use(limit(generalRPS, generalBurst))
	cracks.RegisterRoutes(crackGroup, deps)

	mapGroup := v1.Group("/design-maps")
	mapGroup.Use(limit(generalRPS, generalBurst))
	designmaps.RegisterRoutes(mapGroup, deps)

	return nil
}

// initializeServices wires any services the caller has not provided
func initializeServices(deps *types.Dependencies, cfg *config.Config) {
	db := deps.DB.DB

	if deps.UserService == nil {
		deps.UserService = usersservice.NewService(usersservice.NewRepository(db), cfg.Auth.BcryptCost)
	}
	if deps.AuthService == nil {
		deps.AuthService = authservice.NewService(
			authservice.NewRepository(db),
			usersservice.NewRepository(db),
			authservice.Options{
				Secret:      cfg.Auth.JWTSecret,
				AccessTTL:   cfg.Auth.AccessTokenTTL,
				RefreshTTL:  cfg.Auth.RefreshTokenTTL,
				RememberTTL: cfg.Auth.RememberRefreshTTL,
			},
		)
	}
	if deps.FileStore == nil {
		deps.FileStore = filesservice.NewLocalStore(cfg.Storage.UploadsDir)
	}
	if deps.FileService == nil {
		deps.FileService = filesservice.NewService(filesservice.NewRepository(db), deps.FileStore)
	}
	if deps.ProjectService == nil {
		deps.ProjectService = projectsservice.NewService(projectsservice.NewRepository(db), usersservice.NewRepository(db))
	}
	if deps.BlockService == nil {
		deps.BlockService = blocksservice.NewService(blocksservice.NewRepository(db))
	}
	if deps.CrackService == nil {
		deps.CrackService = cracksservice.NewService(cracksservice.NewRepository(db), deps.BlockService)
	}
	if deps.DesignMapService == nil {
		deps.DesignMapService = designmapsservice.NewService(
			designmapsservice.NewRepository(db),
			cracksservice.NewRepository(db),
		)
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
