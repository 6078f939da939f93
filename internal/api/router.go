package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/darksignal/darksignal/internal/api/handler"
	"github.com/darksignal/darksignal/internal/api/middleware"
	"github.com/darksignal/darksignal/internal/core/domain"
	"github.com/darksignal/darksignal/internal/core/service"
	"github.com/darksignal/darksignal/internal/infrastructure/config"
	mongodb "github.com/darksignal/darksignal/internal/infrastructure/db/mongo"
	redisdb "github.com/darksignal/darksignal/internal/infrastructure/db/redis"
	"github.com/darksignal/darksignal/internal/web"
	"github.com/darksignal/darksignal/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("darksignal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	attackRepo := mongodb.NewAttackRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(userRepo)
	pwnedService := service.NewPwnedService(cfg.Pwned.BaseURL, cfg.Pwned.Timeout)
	attackService := service.NewAttackService(attackRepo)

	authHandler := handler.NewAuthHandler(authService, sessionStore, cfg.Session.CookieName, cfg.Session.TTL)
	pwnedHandler := handler.NewPwnedHandler(pwnedService)
	attackHandler := handler.NewAttackHandler(attackService)

	guard := middleware.SessionGuard(sessionStore, cfg.Session.CookieName)
	adminOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleSuperOrgAdmin)

	// --- Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/auth/session")
	})
	e.StaticFS("/static", web.StaticFS())

	auth := e.Group("/auth")
	auth.GET("/login", authHandler.LoginPage)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.SessionEntry, guard)

	e.GET("/home/", attackHandler.Home, guard)

	e.POST("/pwned/check-password", pwnedHandler.CheckPassword, guard)

	e.GET("/attacks/:id", attackHandler.Show, guard)
	e.GET("/attacks", attackHandler.List, guard, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
