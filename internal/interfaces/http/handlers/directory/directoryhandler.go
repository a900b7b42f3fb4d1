// Package directory serves the customer and agent reference lists.
package directory

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/directory/dto"
	"github.com/orris-inc/helpdesk/internal/application/directory/usecases"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type createCustomerExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateCustomerCommand) (*dto.CustomerDTO, error)
}

type listCustomersExecutor interface {
	Execute(ctx context.Context, ownerID string) ([]*dto.CustomerDTO, error)
}

type createAgentExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateAgentCommand) (*dto.AgentDTO, error)
}

type listAgentsExecutor interface {
	Execute(ctx context.Context, ownerID string) ([]*dto.AgentDTO, error)
}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company" binding:"max=200"`
	Phone   string `json:"phone" binding:"max=50"`
}

type CreateAgentRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"omitempty,oneof=agent admin"`
}

type DirectoryHandler struct {
	createCustomerUC createCustomerExecutor
	listCustomersUC  listCustomersExecutor
	createAgentUC    createAgentExecutor
	listAgentsUC     listAgentsExecutor
	logger           logger.Interface
}

func NewDirectoryHandler(
	createCustomerUC createCustomerExecutor,
	listCustomersUC listCustomersExecutor,
	createAgentUC createAgentExecutor,
	listAgentsUC listAgentsExecutor,
	log logger.Interface,
) *DirectoryHandler {
	return &DirectoryHandler{
		createCustomerUC: createCustomerUC,
		listCustomersUC:  listCustomersUC,
		createAgentUC:    createAgentUC,
		listAgentsUC:     listAgentsUC,
		logger:           log,
	}
}

func ownerID(c *gin.Context) (string, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return "", false
	}
	return p.ID, true
}

// CreateCustomer handles POST /api/customers
func (h *DirectoryHandler) CreateCustomer(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err, "user_id", owner)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createCustomerUC.Execute(c.Request.Context(), usecases.CreateCustomerCommand{
		OwnerID: owner,
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer created successfully")
}

// ListCustomers handles GET /api/customers
func (h *DirectoryHandler) ListCustomers(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	result, err := h.listCustomersUC.Execute(c.Request.Context(), owner)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateAgent handles POST /api/agents
func (h *DirectoryHandler) CreateAgent(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create agent", "error", err, "user_id", owner)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createAgentUC.Execute(c.Request.Context(), usecases.CreateAgentCommand{
		OwnerID: owner,
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Agent created successfully")
}

// ListAgents handles GET /api/agents
func (h *DirectoryHandler) ListAgents(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	result, err := h.listAgentsUC.Execute(c.Request.Context(), owner)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
