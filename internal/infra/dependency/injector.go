// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/friendsofmine/backend/config"
	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/application/usecase/activite"
	"github.com/friendsofmine/backend/internal/application/usecase/seed"
	"github.com/friendsofmine/backend/internal/application/usecase/utilisateur"
	"github.com/friendsofmine/backend/internal/infra/db"
	"github.com/friendsofmine/backend/internal/infra/server/router"
	"github.com/friendsofmine/backend/internal/integration/cache"
	"github.com/friendsofmine/backend/internal/integration/entrypoint/controller"
	"github.com/friendsofmine/backend/internal/integration/entrypoint/middleware"
	"github.com/friendsofmine/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config             *config.Config
	DB                 *gorm.DB
	Router             *router.Router
	UtilisateurService *utilisateur.Service
	ActiviteService    *activite.Service
	Initialisation     *seed.InitialisationService
	RateLimiter        *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient disables the activity listing cache.
func NewInjector(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	utilisateurRepo := persistence.NewUtilisateurRepository(gormDB)
	activiteRepo := persistence.NewActiviteRepository(gormDB)
	transactor := persistence.NewTransactor(gormDB)

	// Create cache
	var activiteCache adapter.ActiviteCache
	var cacheHealthChecker controller.HealthChecker
	if redisClient != nil {
		activiteCache = cache.NewRedisActiviteCache(redisClient, cfg.Redis.CacheTTL)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	} else {
		activiteCache = cache.NewNoopActiviteCache()
	}

	// Create services
	utilisateurService := utilisateur.NewService(utilisateurRepo, transactor, activiteCache)
	activiteService := activite.NewService(activiteRepo, utilisateurRepo, transactor, activiteCache)
	initialisation := seed.NewInitialisationService(utilisateurService, activiteService, transactor)

	// Create controllers
	healthController := controller.NewHealthController(db.HealthChecker(gormDB), cacheHealthChecker)
	utilisateurController := controller.NewUtilisateurController(utilisateurService)
	activiteController := controller.NewActiviteController(activiteService)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.MaxWrites, cfg.RateLimit.Window)

	r := router.NewRouter(healthController, utilisateurController, activiteController, rateLimiter, cfg.Server.TrustedProxies)

	return &Injector{
		Config:             cfg,
		DB:                 gormDB,
		Router:             r,
		UtilisateurService: utilisateurService,
		ActiviteService:    activiteService,
		Initialisation:     initialisation,
		RateLimiter:        rateLimiter,
	}
}
