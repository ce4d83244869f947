package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/config"
	"github.com/meubelwerk/offerte-api/internal/database"
	"github.com/meubelwerk/offerte-api/internal/http/handler"
	"github.com/meubelwerk/offerte-api/internal/http/middleware"
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	rateLimiter      *middleware.RateLimiter
	projectHandler   *handler.ProjectHandler
	linesHandler     *handler.ProjectLinesHandler
	libraryHandler   *handler.LibraryHandler
	settingsHandler  *handler.SettingsHandler
	todoHandler      *handler.TodoHandler
	dashboardHandler *handler.DashboardHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	projectHandler *handler.ProjectHandler,
	linesHandler *handler.ProjectLinesHandler,
	libraryHandler *handler.LibraryHandler,
	settingsHandler *handler.SettingsHandler,
	todoHandler *handler.TodoHandler,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		rateLimiter:      rateLimiter,
		projectHandler:   projectHandler,
		linesHandler:     linesHandler,
		libraryHandler:   libraryHandler,
		settingsHandler:  settingsHandler,
		todoHandler:      todoHandler,
		dashboardHandler: dashboardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Projects
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", rt.projectHandler.List)
			r.Post("/", rt.projectHandler.Create)
			r.Get("/{id}", rt.projectHandler.GetByID)
			r.Patch("/{id}", rt.projectHandler.Update)
			r.Delete("/{id}", rt.projectHandler.Delete)

			r.Get("/{id}/totals", rt.projectHandler.GetTotals)
			r.Post("/{id}/duplicate", rt.projectHandler.Duplicate)
			r.Post("/{id}/archive", rt.projectHandler.Archive)

			// Line collections are replaced as a whole
			r.Put("/{id}/materials", rt.linesHandler.ReplaceMaterials)
			r.Put("/{id}/labor", rt.linesHandler.ReplaceLabor)
			r.Put("/{id}/extras", rt.linesHandler.ReplaceExtras)
		})

		// Material library
		r.Route("/library", func(r chi.Router) {
			r.Get("/", rt.libraryHandler.List)
			r.Post("/", rt.libraryHandler.Create)
			r.Get("/{id}", rt.libraryHandler.GetByID)
			r.Patch("/{id}", rt.libraryHandler.Update)
			r.Delete("/{id}", rt.libraryHandler.Delete)
		})

		// Workshop settings
		r.Get("/settings", rt.settingsHandler.Get)
		r.Patch("/settings", rt.settingsHandler.Update)

		// Order list
		r.Route("/todos", func(r chi.Router) {
			r.Get("/", rt.todoHandler.List)
			r.Post("/", rt.todoHandler.Create)
			r.Post("/{id}/toggle", rt.todoHandler.Toggle)
			r.Delete("/{id}", rt.todoHandler.Delete)
		})

		// Dashboard
		r.Get("/dashboard", rt.dashboardHandler.GetMetrics)
	})

	return r
}
