package routes

import (
	"github.com/gin-gonic/gin"

	directoryhandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/directory"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

type DirectoryRouteConfig struct {
	DirectoryHandler *directoryhandlers.DirectoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupDirectoryRoutes(api *gin.RouterGroup, config *DirectoryRouteConfig) {
	customers := api.Group("/customers")
	customers.Use(config.AuthMiddleware.RequireAuth())
	{
		customers.POST("", config.DirectoryHandler.CreateCustomer)
		customers.GET("", config.DirectoryHandler.ListCustomers)
	}

	agents := api.Group("/agents")
	agents.Use(config.AuthMiddleware.RequireAuth())
	{
		agents.POST("", config.DirectoryHandler.CreateAgent)
		agents.GET("", config.DirectoryHandler.ListAgents)
	}
}
