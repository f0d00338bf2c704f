package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/storecraft/catalog-api/docs"
	"github.com/storecraft/catalog-api/internal/api/handler"
	"github.com/storecraft/catalog-api/internal/api/middleware"
	"github.com/storecraft/catalog-api/internal/core/domain"
	"github.com/storecraft/catalog-api/internal/core/ports"
	"github.com/storecraft/catalog-api/internal/core/service"
	"github.com/storecraft/catalog-api/internal/infrastructure/config"
	"github.com/storecraft/catalog-api/internal/infrastructure/db/postgres"
	redisdb "github.com/storecraft/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	jwtCfg := cfg.JWTConfig()
	issuer, err := service.NewJWTIssuer(jwtCfg)
	if err != nil {
		return nil, err
	}

	var hasher ports.PasswordHasher = service.NewSHA256Hasher()
	if cfg.PasswordScheme == config.PasswordSchemeBcrypt {
		hasher = service.NewBcryptHasher()
	}

	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb, cfg.CacheTTL)

	authService := service.NewAuthService(userRepo, hasher, issuer, log)
	productService := service.NewProductService(productRepo, productCache, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	authMiddleware := middleware.Auth(jwtCfg)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.DELETE("/api/auth/users/:id", authHandler.DeleteUser, authMiddleware, middleware.RequireRole(domain.RoleAdmin))

	// --- Product routes (bearer token required) ---
	products := e.Group("/api/products", authMiddleware)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
