package main

// @title SnapJobs Site API
// @version 1.0
// @description Backend for the SnapJobs product site: accounts, API key management, billing, docs tooling and status page.

// @contact.name API Support
// @contact.url https://snapjobsai.com/support
// @contact.email support@snapjobsai.com

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/snapjobs/snapjobs-back/config"
	"github.com/snapjobs/snapjobs-back/pkg/api/handlers"
	custommw "github.com/snapjobs/snapjobs-back/pkg/api/middleware"
	"github.com/snapjobs/snapjobs-back/pkg/apikey"
	"github.com/snapjobs/snapjobs-back/pkg/auth"
	"github.com/snapjobs/snapjobs-back/pkg/billing"
	"github.com/snapjobs/snapjobs-back/pkg/cache"
	"github.com/snapjobs/snapjobs-back/pkg/chat"
	"github.com/snapjobs/snapjobs-back/pkg/database"
	"github.com/snapjobs/snapjobs-back/pkg/metrics"
	custommiddleware "github.com/snapjobs/snapjobs-back/pkg/middleware"
	"github.com/snapjobs/snapjobs-back/pkg/oauth"
	"github.com/snapjobs/snapjobs-back/pkg/plans"
	"github.com/snapjobs/snapjobs-back/pkg/secrets"
	"github.com/snapjobs/snapjobs-back/pkg/sjm"
	"github.com/snapjobs/snapjobs-back/pkg/status"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Load secrets (environment or AWS Secrets Manager)
	secretsManager, err := secrets.NewManager(secrets.AutoDetectConfig())
	if err != nil {
		log.Fatalf("❌ Failed to initialize secrets manager: %v", err)
	}
	defer secretsManager.Close()

	sec, err := secrets.LoadCommonSecrets(context.Background(), secretsManager)
	if err != nil {
		log.Fatalf("❌ Failed to load secrets: %v", err)
	}

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(sec.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(sec.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Core services
	codec, err := apikey.NewCodec(sec.EncryptionKey)
	if err != nil {
		log.Fatalf("❌ Invalid encryption key: %v", err)
	}
	keyService := apikey.NewService(db.Ent, codec, apikey.WithOwnerRowLocks())

	tokenBlacklist := auth.NewTokenBlacklist(redisClient)
	planService := plans.NewService(db.Ent, redisClient)

	billingService := billing.NewService(db.Ent, planService, &billing.StripeConfig{
		SecretKey:     sec.StripeSecretKey,
		WebhookSecret: sec.StripeWebhookSecret,
		SuccessURL:    cfg.CheckoutSuccessURL,
		CancelURL:     cfg.CheckoutCancelURL,
	})

	oauthService := oauth.NewService(db.Ent, oauth.Config{
		GoogleClientID:     cfg.GoogleClientID,
		GoogleClientSecret: sec.GoogleClientSecret,
		CallbackURL:        cfg.OAuthCallbackURL,
	})

	sjmClient := sjm.NewClient(cfg.SJMBaseURL, sec.MatchingAPIKey)
	chatService := chat.NewServiceWithKey(sec.OpenAIAPIKey, chat.WithMatcher(sjmClient))
	statusService := status.NewService(db.Ent)

	// Scheduled availability probe feeding the status page
	recorder := status.NewRecorder(statusService, sjmClient, nil)
	if cfg.StatusProbeEnabled {
		if err := recorder.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to schedule status probe: %v", err)
		}
		recorder.Start()
		log.Printf("✅ Availability probe scheduled")
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	tierRateLimiter := custommiddleware.NewTierRateLimiter()       // Tier-based limits for authenticated users
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1)   // 3 req/min for registration
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // 100 req/min for Stripe webhooks

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.FrontendURL)))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "SnapJobs Site API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Handlers
	authHandler := handlers.NewAuthHandler(db.Ent, oauthService, tokenBlacklist, prometheusMetrics,
		sec.JWTSecret, cfg.JWTExpirationHours, cfg.FrontendURL)
	userHandler := handlers.NewUserHandler(db.Ent)
	keyHandler := handlers.NewAPIKeyHandler(keyService, prometheusMetrics)
	plansHandler := handlers.NewPlansHandler(planService)
	billingHandler := handlers.NewBillingHandler(billingService, prometheusMetrics)
	statusHandler := handlers.NewStatusHandler(statusService)
	playgroundHandler := handlers.NewPlaygroundHandler(sjmClient, prometheusMetrics)
	chatHandler := handlers.NewChatHandler(chatService, prometheusMetrics)
	docsHandler := handlers.NewDocsHandler()

	// Docs portal (public)
	e.GET("/docs", docsHandler.Docs)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Public routes
	v1.GET("/plans", plansHandler.ListPlans)
	v1.GET("/openapi", docsHandler.OpenAPI)
	v1.GET("/historical", statusHandler.Historical)
	v1.POST("/webhook/stripe", billingHandler.Webhook, webhookRateLimiter.RateLimitMiddleware())

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
	authGroup.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
	authGroup.GET("/oauth/:provider", authHandler.OAuthLogin)
	authGroup.GET("/oauth/:provider/callback", authHandler.OAuthCallback)

	// Protected routes
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(sec.JWTSecret, tokenBlacklist, db.Ent))
	protected.Use(tierRateLimiter.Middleware())

	protected.GET("/auth/me", authHandler.Me)
	protected.POST("/auth/logout", authHandler.Logout)
	protected.POST("/user/change-password", userHandler.ChangePassword)
	protected.GET("/keys", keyHandler.ListKeys)
	protected.POST("/keys", keyHandler.MutateKey)
	protected.POST("/billing/checkout", billingHandler.CreateCheckout)
	protected.POST("/billing/portal", billingHandler.CreatePortal)
	protected.POST("/playground", playgroundHandler.Proxy)
	protected.POST("/chat", chatHandler.Chat)

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	go func() {
		log.Printf("🚀 Starting server on %s", address)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	recorder.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
