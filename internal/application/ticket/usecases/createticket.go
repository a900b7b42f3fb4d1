package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/id"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type CreateTicketCommand struct {
	OwnerID           string `json:"user_id" validate:"required"`
	Title             string `json:"title" validate:"required,max=200"`
	Description       string `json:"description" validate:"max=10000"`
	Priority          string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Category          string `json:"category" validate:"max=100"`
	CustomerName      string `json:"customer_name" validate:"max=200"`
	CustomerEmail     string `json:"customer_email" validate:"omitempty,email"`
	AssignedAgentID   string `json:"assigned_agent_id"`
	AssignedAgentName string `json:"assigned_agent_name" validate:"max=200"`
}

const maxIDAttempts = 3

// CreateTicketUseCase stores title and description exactly as submitted;
// escaping is left to whatever renders them.
type CreateTicketUseCase struct {
	tickets ticket.TicketStore
	logger  logger.Interface
}

func NewCreateTicketUseCase(tickets ticket.TicketStore, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		tickets: tickets,
		logger:  logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.OwnerID, "title", cmd.Title)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		priority = vo.Priority(cmd.Priority)
	}

	var agent *ticket.AgentRef
	if cmd.AssignedAgentID != "" || cmd.AssignedAgentName != "" {
		agent = &ticket.AgentRef{ID: cmd.AssignedAgentID, Name: cmd.AssignedAgentName}
	}

	now := biztime.NowUTC()

	var t *ticket.Ticket
	for attempt := 1; ; attempt++ {
		ticketID, err := id.NewTicketID(now)
		if err != nil {
			uc.logger.Errorw("failed to generate ticket id", "error", err)
			return nil, errors.NewInternalError("failed to generate ticket id")
		}

		t, err = ticket.NewTicket(
			ticketID,
			cmd.OwnerID,
			cmd.Title,
			cmd.Description,
			priority,
			cmd.Category,
			cmd.CustomerName,
			cmd.CustomerEmail,
			agent,
			now,
		)
		if err != nil {
			uc.logger.Warnw("failed to create ticket entity", "error", err)
			return nil, errors.NewValidationError(err.Error())
		}

		err = uc.tickets.Create(ctx, t)
		if err == nil {
			break
		}
		// generated ids can collide; a fresh suffix is tried a bounded number of times
		if errors.IsConflictError(err) && attempt < maxIDAttempts {
			uc.logger.Warnw("ticket id collision, retrying", "ticket_id", ticketID, "attempt", attempt)
			continue
		}
		uc.logger.Errorw("failed to save ticket", "error", err, "user_id", cmd.OwnerID)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "user_id", cmd.OwnerID)

	return dto.ToTicketDTO(t), nil
}
