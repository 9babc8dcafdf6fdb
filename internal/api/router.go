package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/blogify/blog-api/docs"
	"github.com/blogify/blog-api/internal/api/handler"
	"github.com/blogify/blog-api/internal/api/middleware"
	"github.com/blogify/blog-api/internal/core/service"
	"github.com/blogify/blog-api/internal/infrastructure/config"
	mongodb "github.com/blogify/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/blogify/blog-api/internal/infrastructure/db/redis"
)

// Sign-in and sign-up share one limiter budget per client IP.
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, roleRepo)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, log)
	postHandler := handler.NewPostHandler(postService)

	verifyToken := middleware.VerifyToken(cfg.JWTSecret)
	authLimiter := redisdb.NewRateLimiter(rdb, authRateLimit, authRateWindow)

	// --- Auth routes ---
	auth := e.Group("/api/user/auth", middleware.RateLimit(authLimiter, "auth", log))
	auth.POST("/sign-up", authHandler.SignUp,
		middleware.CheckDuplicateEmail(userRepo),
		middleware.CheckRolesExisted(),
	)
	auth.POST("/sign-in", authHandler.SignIn)

	// --- Access-test routes ---
	test := e.Group("/api/user/test")
	test.GET("/all-access", userHandler.AllAccess)
	test.GET("/access-user", userHandler.UserBoard)
	test.GET("/access-admin", userHandler.AdminBoard,
		verifyToken, middleware.RequireRoles(userRepo, roleRepo, "admin"))
	test.GET("/access-moderator", userHandler.ModeratorBoard,
		verifyToken, middleware.RequireRoles(userRepo, roleRepo, "moderator"))
	test.GET("/all-users/:id", userHandler.AllUsers,
		verifyToken, middleware.RequireRoles(userRepo, roleRepo, "admin", "moderator"))

	// --- Post routes ---
	posts := e.Group("/api/posts")
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.DELETE("", postHandler.DeleteAll)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
