package ticket

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title             string `json:"title" binding:"required,max=200"`
	Description       string `json:"description" binding:"max=10000"`
	Priority          string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category          string `json:"category" binding:"max=100"`
	CustomerName      string `json:"customer_name" binding:"max=200"`
	CustomerEmail     string `json:"customer_email" binding:"omitempty,email"`
	AssignedAgentID   string `json:"assigned_agent_id"`
	AssignedAgentName string `json:"assigned_agent_name" binding:"max=200"`
}

func (r *CreateTicketRequest) ToCommand(ownerID string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		OwnerID:           ownerID,
		Title:             r.Title,
		Description:       r.Description,
		Priority:          r.Priority,
		Category:          r.Category,
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		AssignedAgentID:   r.AssignedAgentID,
		AssignedAgentName: r.AssignedAgentName,
	}
}

// UpdateTicketRequest carries only the fields being changed.
type UpdateTicketRequest struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	Status            *string `json:"status"`
	Priority          *string `json:"priority"`
	Category          *string `json:"category"`
	CustomerName      *string `json:"customer_name"`
	CustomerEmail     *string `json:"customer_email"`
	AssignedAgentID   *string `json:"assigned_agent_id"`
	AssignedAgentName *string `json:"assigned_agent_name"`
	UnassignAgent     bool    `json:"unassign_agent"`
}

func (r *UpdateTicketRequest) ToCommand(ownerID, ticketID string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		OwnerID:           ownerID,
		TicketID:          ticketID,
		Title:             r.Title,
		Description:       r.Description,
		Status:            r.Status,
		Priority:          r.Priority,
		Category:          r.Category,
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		AssignedAgentID:   r.AssignedAgentID,
		AssignedAgentName: r.AssignedAgentName,
		UnassignAgent:     r.UnassignAgent,
	}
}

type AddMessageRequest struct {
	Message     string `json:"message" binding:"required,max=10000"`
	AuthorName  string `json:"author_name" binding:"max=200"`
	AuthorEmail string `json:"author_email" binding:"omitempty,email"`
	IsInternal  bool   `json:"is_internal"`
}

func parseListTicketsQuery(c *gin.Context, ownerID string) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		OwnerID:  ownerID,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}
}
