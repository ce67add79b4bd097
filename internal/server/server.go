// Package server contains the HTTP handlers and routing for the reviews API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gamereviews/internal/auth"
	"gamereviews/internal/bootstrap"
	"gamereviews/internal/config"
	"gamereviews/internal/database"
	"gamereviews/internal/manifest"
	"gamereviews/internal/middleware"
	"gamereviews/internal/repository"
	"gamereviews/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const serviceName = "gamereviews-api"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *auth.TokenIssuer
	endpoints      manifest.Manifest
	categorySvc    *service.CategoryService
	reviewSvc      *service.ReviewService
	commentSvc     *service.CommentService
	userSvc        *service.UserService
	authSvc        *service.AuthService
}

// NewServer connects to the store and Redis and creates a server around them.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, rdb, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{ApplySchema: true})
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db, rdb)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use it with an in-memory store and a nil or fake Redis client.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	endpoints, err := manifest.Load()
	if err != nil {
		return nil, err
	}

	categoryRepo := repository.NewCategoryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)

	workers := cfg.HashWorkers
	if workers < 1 {
		workers = 1
	}
	hasher := auth.NewPasswordHasher(cfg.BcryptCost, workers)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics(serviceName),
		tokens:         tokens,
		endpoints:      endpoints,
		categorySvc:    service.NewCategoryService(categoryRepo),
		reviewSvc:      service.NewReviewService(reviewRepo, categoryRepo),
		commentSvc:     service.NewCommentService(commentRepo, reviewRepo),
		userSvc:        service.NewUserService(userRepo),
		authSvc:        service.NewAuthService(userRepo, hasher, tokens),
	}, nil
}

// App returns the configured fiber application, building it on first use.
func (s *Server) App() *fiber.App {
	if s.app != nil {
		return s.app
	}
	app := fiber.New(fiber.Config{
		AppName:      "Game Reviews API",
		ErrorHandler: ErrorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.TracingMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected browser requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.TokenHeader,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		MaxAge:       86400,
	}))

	maxPerMinute := s.config.RateLimitMax
	if maxPerMinute <= 0 {
		maxPerMinute = 100
	}
	app.Use(limiter.New(limiter.Config{
		Max:        maxPerMinute,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions || s.config.Env == "test"
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests")
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	tokenRequired := middleware.TokenRequired(s.tokens)

	api := app.Group("/api")
	api.Get("/", s.GetEndpoints)

	categories := api.Group("/categories")
	categories.Get("/", s.GetCategories)
	categories.Post("/", tokenRequired, s.PostCategory)

	reviews := api.Group("/reviews")
	reviews.Get("/", s.GetReviews)
	reviews.Post("/", tokenRequired, s.PostReview)
	reviews.Get("/:review_id/comments", s.GetReviewComments)
	reviews.Post("/:review_id/comments", tokenRequired, s.PostComment)
	reviews.Get("/:review_id", s.GetReview)
	reviews.Patch("/:review_id", tokenRequired, s.PatchReviewVotes)
	reviews.Delete("/:review_id", tokenRequired, s.DeleteReview)

	comments := api.Group("/comments")
	comments.Patch("/:comment_id", tokenRequired, s.PatchCommentVotes)
	comments.Delete("/:comment_id", tokenRequired, s.DeleteComment)

	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", middleware.RateLimit(middleware.RateLimitConfig{
		Redis:    s.redis,
		Env:      s.config.Env,
		Limit:    3,
		Window:   10 * time.Minute,
		Resource: "signup",
	}), s.PostUser)
	users.Post("/login", middleware.RateLimit(middleware.RateLimitConfig{
		Redis:    s.redis,
		Env:      s.config.Env,
		Limit:    10,
		Window:   5 * time.Minute,
		Resource: "login",
	}), s.Login)
	users.Get("/:username", s.GetUser)

	app.Use(RouteNotFound)
}

// GetEndpoints serves the packaged endpoint manifest.
func (s *Server) GetEndpoints(c *fiber.Ctx) error {
	return c.JSON(s.endpoints)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck pings the store and, when configured, Redis.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis only backs rate limiting, which fails open, so its absence is not fatal.
	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	if err := app.Listen(":" + s.config.Port); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and closes connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	bootstrap.Close(s.db, s.redis)

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
