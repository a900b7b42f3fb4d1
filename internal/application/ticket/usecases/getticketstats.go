package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type GetTicketStatsQuery struct {
	OwnerID string
}

type GetTicketStatsUseCase struct {
	tickets ticket.TicketStore
	logger  logger.Interface
}

func NewGetTicketStatsUseCase(tickets ticket.TicketStore, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		tickets: tickets,
		logger:  logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.StatsDTO, error) {
	if query.OwnerID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	tickets, err := uc.tickets.List(ctx, query.OwnerID, ticket.Filter{})
	if err != nil {
		uc.logger.Errorw("failed to load tickets for stats", "error", err, "user_id", query.OwnerID)
		return nil, err
	}

	stats := ticket.ComputeStats(tickets, biztime.NowUTC())
	uc.logger.Debugw("ticket stats computed", "user_id", query.OwnerID, "total", stats.TotalTickets)

	return dto.ToStatsDTO(stats), nil
}
