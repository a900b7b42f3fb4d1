package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Static paths before /:id
		tickets.GET("/stats", config.TicketHandler.GetTicketStats)
		tickets.POST("/seed", config.TicketHandler.SeedSampleData)

		tickets.POST("/:id/messages", config.TicketHandler.AddMessage)
		tickets.GET("/:id/messages", config.TicketHandler.ListMessages)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
