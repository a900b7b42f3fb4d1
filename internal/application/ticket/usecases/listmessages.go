package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
)

type ListMessagesQuery struct {
	OwnerID  string
	TicketID string
}

// ListMessagesUseCase returns a ticket's messages oldest first. Messages of a
// deleted ticket are still returned.
type ListMessagesUseCase struct {
	messages ticket.MessageStore
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewListMessagesUseCase(
	messages ticket.MessageStore,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		messages: messages,
		markdown: markdownService,
		logger:   logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error) {
	if query.OwnerID == "" || query.TicketID == "" {
		return nil, errors.NewValidationError("user ID and ticket ID are required")
	}

	messages, err := uc.messages.ListByTicket(ctx, query.OwnerID, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	ticket.SortMessagesOldestFirst(messages)

	result := make([]*dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		html, err := uc.markdown.ToHTMLSanitized(m.Body())
		if err != nil {
			uc.logger.Warnw("failed to render message", "error", err, "message_id", m.ID())
			html = ""
		}
		result = append(result, dto.ToMessageDTO(m, html))
	}

	return result, nil
}
