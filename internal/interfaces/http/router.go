package http

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/storage"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/routes"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(stores *storage.Stores, ping handlers.PingFunc, cfg *config.Config, log logger.Interface) *Router {
	return &Router{Container: NewContainer(stores, ping, cfg, log)}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Metrics())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/metrics", middleware.MetricsHandler())

	api := r.engine.Group("/api")

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupDirectoryRoutes(api, &routes.DirectoryRouteConfig{
		DirectoryHandler: r.hdlrs.directoryHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
