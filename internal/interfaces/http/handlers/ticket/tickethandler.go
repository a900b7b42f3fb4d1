package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	getTicketUC      usecases.GetTicketExecutor
	updateTicketUC   usecases.UpdateTicketExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	addMessageUC     usecases.AddMessageExecutor
	listMessagesUC   usecases.ListMessagesExecutor
	getTicketStatsUC usecases.GetTicketStatsExecutor
	seedSampleUC     usecases.SeedSampleDataExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	addMessageUC usecases.AddMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	getTicketStatsUC usecases.GetTicketStatsExecutor,
	seedSampleUC usecases.SeedSampleDataExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		listTicketsUC:    listTicketsUC,
		getTicketUC:      getTicketUC,
		updateTicketUC:   updateTicketUC,
		deleteTicketUC:   deleteTicketUC,
		addMessageUC:     addMessageUC,
		listMessagesUC:   listMessagesUC,
		getTicketStatsUC: getTicketStatsUC,
		seedSampleUC:     seedSampleUC,
		logger:           log,
	}
}

// principal aborts with 401 when the auth middleware did not run.
func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return auth.Principal{}, false
	}
	return p, true
}

func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if !bindJSON(c, &req) {
		h.logger.Warnw("invalid request body for create ticket", "user_id", p.ID)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(p.ID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets handles GET /api/tickets?status=&priority=&search=
func (h *TicketHandler) ListTickets(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), parseListTicketsQuery(c, p.ID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		OwnerID:  p.ID,
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PATCH /api/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(p.ID, c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		OwnerID:  p.ID,
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddMessage handles POST /api/tickets/:id/messages. Author fields default
// to the authenticated principal.
func (h *TicketHandler) AddMessage(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req AddMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := usecases.AddMessageCommand{
		OwnerID:     p.ID,
		TicketID:    c.Param("id"),
		Message:     req.Message,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		IsInternal:  req.IsInternal,
	}
	if cmd.AuthorName == "" && cmd.AuthorEmail == "" {
		cmd.AuthorName = p.AuthorName()
		cmd.AuthorEmail = p.Email
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message added successfully")
}

// ListMessages handles GET /api/tickets/:id/messages
func (h *TicketHandler) ListMessages(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		OwnerID:  p.ID,
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicketStats handles GET /api/tickets/stats
func (h *TicketHandler) GetTicketStats(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	result, err := h.getTicketStatsUC.Execute(c.Request.Context(), usecases.GetTicketStatsQuery{OwnerID: p.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SeedSampleData handles POST /api/tickets/seed
func (h *TicketHandler) SeedSampleData(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	seeded, err := h.seedSampleUC.Execute(c.Request.Context(), p.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"seeded": seeded})
}
