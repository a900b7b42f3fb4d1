package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	OwnerID  string
	TicketID string
}

type GetTicketUseCase struct {
	tickets  ticket.TicketStore
	messages ticket.MessageStore
	logger   logger.Interface
}

func NewGetTicketUseCase(
	tickets ticket.TicketStore,
	messages ticket.MessageStore,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		tickets:  tickets,
		messages: messages,
		logger:   logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.OwnerID == "" || query.TicketID == "" {
		return nil, errors.NewValidationError("user ID and ticket ID are required")
	}

	t, err := uc.tickets.Get(ctx, query.OwnerID, query.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", query.TicketID)
		}
		return nil, err
	}

	if err := applyMessageCounts(ctx, uc.messages, query.OwnerID, t); err != nil {
		uc.logger.Errorw("failed to load message count", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
