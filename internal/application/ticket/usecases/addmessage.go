package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/id"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type AddMessageCommand struct {
	OwnerID     string `json:"user_id" validate:"required"`
	TicketID    string `json:"ticket_id" validate:"required"`
	Message     string `json:"message" validate:"required,max=10000"`
	AuthorName  string `json:"author_name" validate:"max=200"`
	AuthorEmail string `json:"author_email" validate:"omitempty,email"`
	IsInternal  bool   `json:"is_internal"`
}

// AddMessageUseCase appends a message to an existing ticket and refreshes the
// ticket's message count and updated_at in the same unit of work.
type AddMessageUseCase struct {
	tickets  ticket.TicketStore
	messages ticket.MessageStore
	txRunner db.TxRunner
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewAddMessageUseCase(
	tickets ticket.TicketStore,
	messages ticket.MessageStore,
	txRunner db.TxRunner,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		tickets:  tickets,
		messages: messages,
		txRunner: txRunner,
		markdown: markdownService,
		logger:   logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*dto.MessageDTO, error) {
	uc.logger.Infow("executing add message use case", "ticket_id", cmd.TicketID, "user_id", cmd.OwnerID)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid add message command", "error", err)
		return nil, err
	}

	authorName := cmd.AuthorName
	if authorName == "" {
		authorName = cmd.AuthorEmail
	}

	var msg *ticket.Message
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.tickets.Get(txCtx, cmd.OwnerID, cmd.TicketID)
		if err != nil {
			return err
		}

		now := biztime.NowUTC()
		messageID, err := id.NewMessageID(now)
		if err != nil {
			return errors.NewInternalError("failed to generate message id")
		}

		msg, err = ticket.NewMessage(
			messageID,
			t.ID(),
			cmd.OwnerID,
			cmd.Message,
			authorName,
			cmd.AuthorEmail,
			cmd.IsInternal,
			now,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.messages.Create(txCtx, msg); err != nil {
			return err
		}

		counts, err := uc.messages.CountByTickets(txCtx, cmd.OwnerID, []string{t.ID()})
		if err != nil {
			return err
		}

		t.RecordMessage(counts[t.ID()], now)
		return uc.tickets.Update(txCtx, t)
	})
	if err != nil {
		if errors.IsNotFoundError(err) || errors.IsValidationError(err) {
			uc.logger.Warnw("message not added", "error", err, "ticket_id", cmd.TicketID)
		} else {
			uc.logger.Errorw("failed to add message", "error", err, "ticket_id", cmd.TicketID)
		}
		return nil, err
	}

	uc.logger.Infow("message added successfully", "message_id", msg.ID(), "ticket_id", cmd.TicketID)

	return dto.ToMessageDTO(msg, uc.render(msg)), nil
}

func (uc *AddMessageUseCase) render(m *ticket.Message) string {
	html, err := uc.markdown.ToHTMLSanitized(m.Body())
	if err != nil {
		uc.logger.Warnw("failed to render message", "error", err, "message_id", m.ID())
		return ""
	}
	return html
}
