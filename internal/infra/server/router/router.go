// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/friendsofmine/backend/internal/integration/entrypoint/controller"
	"github.com/friendsofmine/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	utilisateurController *controller.UtilisateurController
	activiteController    *controller.ActiviteController
	writeRateLimiter      *middleware.RateLimiter
	trustedProxies        []string
}

// NewRouter creates a new router instance with all dependencies.
// Nil controllers leave their routes unregistered.
func NewRouter(
	healthController *controller.HealthController,
	utilisateurController *controller.UtilisateurController,
	activiteController *controller.ActiviteController,
	writeRateLimiter *middleware.RateLimiter,
	trustedProxies []string,
) *Router {
	return &Router{
		healthController:      healthController,
		utilisateurController: utilisateurController,
		activiteController:    activiteController,
		writeRateLimiter:      writeRateLimiter,
		trustedProxies:        trustedProxies,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	// Forwarding headers are only honoured from the configured proxies; the
	// write rate limiter keys on the resulting client IP.
	if err := r.engine.SetTrustedProxies(r.trustedProxies); err != nil {
		slog.Error("Invalid trusted proxies, trusting none", "error", err, "proxies", r.trustedProxies)
		_ = r.engine.SetTrustedProxies(nil)
	}
	r.engine.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	r.setupHealthRoutes()
	r.setupLegacyRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupLegacyRoutes keeps the historical top-level listing path.
func (r *Router) setupLegacyRoutes() {
	if r.activiteController != nil {
		r.engine.GET("/activitesWithResponsable", r.activiteController.FindAllWithResponsable)
	}
}

// writeGuard returns the middleware chain applied to mutating routes.
func (r *Router) writeGuard() []gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return nil
	}
	return []gin.HandlerFunc{r.writeRateLimiter.Middleware()}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.utilisateurController != nil {
			utilisateurs := v1.Group("/utilisateurs")
			{
				utilisateurs.GET("", r.utilisateurController.List)
				utilisateurs.GET("/count", r.utilisateurController.Count)
				utilisateurs.GET("/:id", r.utilisateurController.Get)
				utilisateurs.POST("", append(r.writeGuard(), r.utilisateurController.Create)...)
				utilisateurs.PUT("/:id", append(r.writeGuard(), r.utilisateurController.Update)...)
			}
		}

		if r.activiteController != nil {
			activites := v1.Group("/activites")
			{
				activites.GET("", r.activiteController.List)
				activites.GET("/count", r.activiteController.Count)
				activites.GET("/:id", r.activiteController.Get)
				activites.POST("", append(r.writeGuard(), r.activiteController.Create)...)
				activites.PUT("/:id", append(r.writeGuard(), r.activiteController.Update)...)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
