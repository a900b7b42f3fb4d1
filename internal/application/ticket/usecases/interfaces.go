package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*dto.MessageDTO, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.StatsDTO, error)
}

type SeedSampleDataExecutor interface {
	Execute(ctx context.Context, ownerID string) (bool, error)
}
