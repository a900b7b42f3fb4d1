package http

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/storage"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Container holds the stores, use cases and handlers for one process.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	stores *storage.Stores

	ucs   *allUseCases
	hdlrs *allHandlers

	jwtSvc         *auth.JWTService
	authMiddleware *middleware.AuthMiddleware
}

// NewContainer wires everything on top of already opened stores. ping backs
// the health endpoint and may be nil.
func NewContainer(stores *storage.Stores, ping handlers.PingFunc, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		stores: stores,
	}

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	c.ucs = newUseCases(stores, cfg.Seed.SampleData, log)
	c.hdlrs = newHandlers(c.ucs, stores.Backend, ping, log)

	return c
}
