package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	OwnerID  string
	TicketID string
}

// DeleteTicketUseCase removes a ticket. Its messages are left in place.
type DeleteTicketUseCase struct {
	tickets ticket.TicketStore
	logger  logger.Interface
}

func NewDeleteTicketUseCase(tickets ticket.TicketStore, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		tickets: tickets,
		logger:  logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.OwnerID)

	if cmd.OwnerID == "" || cmd.TicketID == "" {
		return errors.NewValidationError("user ID and ticket ID are required")
	}

	if err := uc.tickets.Delete(ctx, cmd.OwnerID, cmd.TicketID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		}
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
