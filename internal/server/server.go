// Package server provides HTTP server setup and configuration.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/jarcd/hello-service/internal/config"
	"github.com/jarcd/hello-service/internal/handlers"
	"github.com/jarcd/hello-service/internal/logging"
)

// RequestIDHeader carries the request ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if request ID already exists in header
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			// Generate new UUID for request ID
			requestID = uuid.New().String()
		}

		// Set request ID in context and response header
		c.Set(logging.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// NewRateLimitMiddleware creates a per-IP rate limiting middleware using ulule/limiter.
func NewRateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: cfg.Period,
		Limit:  cfg.Requests,
	}

	// Create in-memory store
	store := memory.NewStore()

	// Create rate limiter instance
	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance)
}

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config *config.Config
	Logger zerolog.Logger
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	// Set Gin to release mode to disable ANSI colors in logs
	gin.SetMode(gin.ReleaseMode)

	// gin.Default() would add its own colored logger; request logging goes through zerolog instead
	router := gin.New()

	// Only listed proxies may set X-Forwarded-For; otherwise ClientIP is the peer address
	if err := router.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil {
		deps.Logger.Error().Err(err).Msg("invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(gin.Recovery())
	router.Use(logging.Middleware(deps.Logger, handlers.HealthPath))

	// Add CORS middleware for browser clients of the demo
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(RequestIDMiddleware())
	if deps.Config.RateLimit.Enabled() {
		router.Use(NewRateLimitMiddleware(deps.Config.RateLimit))
	}
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET(handlers.HelloPath, handlers.HelloHandler)
	router.GET(handlers.HealthPath, handlers.HealthHandler)

	return router
}

// newHTTPServer wraps handler in an http.Server using the configured timeouts
func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
