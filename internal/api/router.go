package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/pokework/pokework-api/internal/api/handler"
	"github.com/pokework/pokework-api/internal/api/middleware"
	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/service"
	mongodb "github.com/pokework/pokework-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pokework/pokework-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pokework"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	pokemonRepo := mongodb.NewPokemonRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	questRepo := mongodb.NewQuestRepository(db)
	goalRepo := mongodb.NewGoalRepository(db)
	tx := mongodb.NewTxRunner(client)
	idemStore := redisdb.NewIdempotencyStore(rdb)

	authService := service.NewAuthService(userRepo, pokemonRepo, tx, jwtSecret, 24*time.Hour, log)
	workService := service.NewWorkService(sessionRepo, pokemonRepo, goalRepo, tx, idemStore, log)
	questService := service.NewQuestService(questRepo, sessionRepo, pokemonRepo, goalRepo, tx, log)
	goalService := service.NewGoalService(goalRepo, log)
	achievementService := service.NewAchievementService(sessionRepo, questRepo, pokemonRepo, log)
	trainerService := service.NewTrainerService(userRepo, pokemonRepo, log)
	adminService := service.NewAdminService(userRepo, pokemonRepo, sessionRepo, questRepo, goalRepo, tx, log)

	authHandler := handler.NewAuthHandler(authService)
	workHandler := handler.NewWorkHandler(workService)
	questHandler := handler.NewQuestHandler(questService)
	goalHandler := handler.NewGoalHandler(goalService)
	achievementHandler := handler.NewAchievementHandler(achievementService)
	dashboardHandler := handler.NewDashboardHandler(trainerService)
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Auth routes (rate limited: credential endpoints are a brute-force
	// target) ---
	auth := e.Group("/auth", echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(10)),
	))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(jwtSecret))

	v1.GET("/dashboard", dashboardHandler.Get)
	v1.PUT("/dashboard/profile", dashboardHandler.UpdateProfile)
	v1.PUT("/dashboard/status", dashboardHandler.UpdateStatus)
	v1.PUT("/dashboard/pokemon", dashboardHandler.RenamePokemon)

	v1.POST("/work", workHandler.Log)
	v1.GET("/work", workHandler.List)

	v1.POST("/quests", questHandler.Create)
	v1.GET("/quests", questHandler.List)
	v1.POST("/quests/:id/finish", questHandler.Finish)
	v1.DELETE("/quests/:id", questHandler.Delete)

	v1.POST("/goals", goalHandler.Create)
	v1.GET("/goals", goalHandler.List)
	v1.PUT("/goals/:id", goalHandler.Update)
	v1.DELETE("/goals/:id", goalHandler.Delete)

	v1.GET("/achievements", achievementHandler.List)

	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	return e
}
