package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/budget-planner/planner-api/apps/api/handlers"
	awsclient "github.com/budget-planner/planner-api/libs/go/client/aws"
	"github.com/budget-planner/planner-api/libs/go/db"
	"github.com/budget-planner/planner-api/libs/go/helpers"
	"github.com/budget-planner/planner-api/libs/go/interfaces"
	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/budget-planner/planner-api/libs/go/middleware"
	"github.com/budget-planner/planner-api/libs/go/services"
	"github.com/budget-planner/planner-api/libs/go/store/filestore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	profileHandler    *handlers.ProfileHandler
	projectionHandler *handlers.ProjectionHandler
	healthHandler     *handlers.HealthHandler

	rateLimiter *middleware.RateLimiter

	// Services
	commonServices *handlers.CommonServices
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Engine location ---
	location := time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		location, err = time.LoadLocation(tz)
		if err != nil {
			logger.Fatal("Invalid TIMEZONE", zap.String("timezone", tz), zap.Error(err))
		}
	}

	// --- Profile store ---
	var store interfaces.ProfileStore
	if dir := os.Getenv("PROFILE_STORE_DIR"); dir != "" {
		logger.Info("Using file profile store", zap.String("dir", dir))
		store = filestore.New(dir, location)
	} else {
		store = newDatabaseStore(ctx, stage, location)
	}

	// --- Projection cache ---
	cacheTTL := services.DefaultProjectionCacheTTL
	if raw := os.Getenv("PROJECTION_CACHE_TTL"); raw != "" {
		cacheTTL, err = time.ParseDuration(raw)
		if err != nil {
			logger.Fatal("Invalid PROJECTION_CACHE_TTL", zap.String("value", raw), zap.Error(err))
		}
	}
	projection := services.NewProjectionService(store, location, cacheTTL)

	// --- Rate limiting ---
	rps, _ := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	burst, _ := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	rateLimiter = middleware.NewRateLimiter(rps, burst)
	go rateLimiter.Run(ctx)

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		Store:      store,
		Projection: projection,
		Location:   location,
		Logger:     logger.Log,
	})

	profileHandler = handlers.NewProfileHandler(commonServices)
	projectionHandler = handlers.NewProjectionHandler(commonServices)
	healthHandler = handlers.NewHealthHandler(stage)

	logger.Info("Handlers initialized",
		zap.String("timezone", location.String()),
		zap.Duration("projection_cache_ttl", cacheTTL),
	)
}

// newDatabaseStore connects to Postgres, applies pending migrations and
// returns the database backed profile store
func newDatabaseStore(ctx context.Context, stage string, location *time.Location) *services.ProfileService {
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := secretsClient.ResolveDatabaseURL(ctx, stage)
	if err != nil {
		logger.Fatal("Failed to resolve database URL", zap.Error(err))
	}
	if dsn == "" {
		logger.Fatal("DATABASE_URL is required for local development")
	}

	if err := db.Migrate(dsn); err != nil {
		logger.Fatal("Failed to apply database migrations", zap.Error(err))
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	return services.NewProfileService(db.New(dbpool), dbpool, location)
}

func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(rateLimiter.Middleware())

	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.DevelopmentLoggingMiddleware(isDevelopment))
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}
	router.Use(middleware.BodyLimitMiddleware(middleware.DefaultMaxBodySize))

	router.GET("/health", healthHandler.Health)
	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":          "route not found",
			"correlation_id": middleware.GetCorrelationID(c),
		})
	})

	v1 := router.Group("/api/v1")
	{
		profiles := v1.Group("/profiles")
		{
			profiles.GET("", profileHandler.ListProfiles)
			profiles.POST("", profileHandler.CreateProfile)
			profiles.GET("/:profile", profileHandler.GetProfile)
			profiles.DELETE("/:profile", profileHandler.DeleteProfile)
			profiles.PUT("/:profile/default", profileHandler.SetDefaultProfile)

			timelines := profiles.Group("/:profile/timelines/:timeline")
			{
				timelines.GET("/operations", profileHandler.ListOperations)
				timelines.PUT("/operations", profileHandler.SaveOperations)

				timelines.GET("/projection", projectionHandler.GetProjection)
				timelines.GET("/projection/amount", projectionHandler.GetAmount)
				timelines.GET("/projection/series", projectionHandler.GetSeries)
				timelines.GET("/projection/chart", projectionHandler.GetChart)
			}
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = envList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	corsConfig.AllowHeaders = envList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"})
	corsConfig.ExposeHeaders = envList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

// envList splits a comma separated env var, falling back to def when unset
func envList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	values := strings.Split(raw, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}
