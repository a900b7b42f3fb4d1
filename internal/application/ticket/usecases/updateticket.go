package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// UpdateTicketCommand is a partial update; nil fields are left unchanged.
type UpdateTicketCommand struct {
	OwnerID           string  `json:"user_id" validate:"required"`
	TicketID          string  `json:"id" validate:"required"`
	Title             *string `json:"title" validate:"omitempty,max=200"`
	Description       *string `json:"description" validate:"omitempty,max=10000"`
	Status            *string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	Priority          *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Category          *string `json:"category" validate:"omitempty,max=100"`
	CustomerName      *string `json:"customer_name" validate:"omitempty,max=200"`
	CustomerEmail     *string `json:"customer_email" validate:"omitempty,email"`
	AssignedAgentID   *string `json:"assigned_agent_id"`
	AssignedAgentName *string `json:"assigned_agent_name" validate:"omitempty,max=200"`
	UnassignAgent     bool    `json:"unassign_agent"`
}

type UpdateTicketUseCase struct {
	tickets  ticket.TicketStore
	messages ticket.MessageStore
	logger   logger.Interface
}

func NewUpdateTicketUseCase(
	tickets ticket.TicketStore,
	messages ticket.MessageStore,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		tickets:  tickets,
		messages: messages,
		logger:   logger,
	}
}

// Execute applies the change set and always refreshes updated_at, even when
// no field differs from the stored value.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.OwnerID)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid update ticket command", "error", err)
		return nil, err
	}

	t, err := uc.tickets.Get(ctx, cmd.OwnerID, cmd.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		}
		return nil, err
	}

	if err := t.Update(uc.toChanges(cmd), biztime.NowUTC()); err != nil {
		uc.logger.Warnw("failed to apply ticket changes", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := applyMessageCounts(ctx, uc.messages, cmd.OwnerID, t); err != nil {
		uc.logger.Errorw("failed to load message count", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if err := uc.tickets.Update(ctx, t); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		}
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "status", t.Status())

	return dto.ToTicketDTO(t), nil
}

func (uc *UpdateTicketUseCase) toChanges(cmd UpdateTicketCommand) ticket.Changes {
	c := ticket.Changes{
		Title:         cmd.Title,
		Description:   cmd.Description,
		Category:      cmd.Category,
		CustomerName:  cmd.CustomerName,
		CustomerEmail: cmd.CustomerEmail,
		UnassignAgent: cmd.UnassignAgent,
	}

	if cmd.Status != nil {
		status := vo.TicketStatus(*cmd.Status)
		c.Status = &status
	}
	if cmd.Priority != nil {
		priority := vo.Priority(*cmd.Priority)
		c.Priority = &priority
	}
	if cmd.AssignedAgentID != nil || cmd.AssignedAgentName != nil {
		agent := &ticket.AgentRef{}
		if cmd.AssignedAgentID != nil {
			agent.ID = *cmd.AssignedAgentID
		}
		if cmd.AssignedAgentName != nil {
			agent.Name = *cmd.AssignedAgentName
		}
		c.AssignedAgent = agent
	}

	return c
}
