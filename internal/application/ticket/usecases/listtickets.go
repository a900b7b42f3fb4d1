package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	OwnerID  string
	Status   string
	Priority string
	Search   string
}

type ListTicketsUseCase struct {
	tickets  ticket.TicketStore
	messages ticket.MessageStore
	seeder   SeedSampleDataExecutor
	logger   logger.Interface
}

// NewListTicketsUseCase creates the list use case. seeder may be nil, which
// disables sample data.
func NewListTicketsUseCase(
	tickets ticket.TicketStore,
	messages ticket.MessageStore,
	seeder SeedSampleDataExecutor,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		tickets:  tickets,
		messages: messages,
		seeder:   seeder,
		logger:   logger,
	}
}

// Execute returns the owner's tickets matching the query, newest first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	uc.logger.Debugw("executing list tickets use case",
		"user_id", query.OwnerID,
		"status", query.Status,
		"priority", query.Priority,
		"search", query.Search,
	)

	if query.OwnerID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	if uc.seeder != nil {
		// seeding failures never hide the owner's tickets
		if _, err := uc.seeder.Execute(ctx, query.OwnerID); err != nil {
			uc.logger.Warnw("failed to seed sample data", "error", err, "user_id", query.OwnerID)
		}
	}

	filter := ticket.Filter{
		Status:   query.Status,
		Priority: query.Priority,
		Search:   query.Search,
	}

	tickets, err := uc.tickets.List(ctx, query.OwnerID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "user_id", query.OwnerID)
		return nil, err
	}

	tickets = filter.Apply(tickets)
	ticket.SortNewestFirst(tickets)

	if err := applyMessageCounts(ctx, uc.messages, query.OwnerID, tickets...); err != nil {
		uc.logger.Errorw("failed to load message counts", "error", err, "user_id", query.OwnerID)
		return nil, err
	}

	return dto.ToTicketDTOList(tickets), nil
}
