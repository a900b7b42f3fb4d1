package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func TestGetTicketStatsUseCase_Execute(t *testing.T) {
	now := time.Now()
	tickets := &mockTicketStore{
		ListFunc: func(ctx context.Context, ownerID string, filter ticket.Filter) ([]*ticket.Ticket, error) {
			assert.True(t, filter.IsEmpty())
			return []*ticket.Ticket{
				newTestTicket(t, "T-001", vo.StatusOpen, now),
				newTestTicket(t, "T-002", vo.StatusOpen, now),
				newTestTicket(t, "T-003", vo.StatusInProgress, now),
				newTestTicket(t, "T-004", vo.StatusClosed, now),
			}, nil
		},
	}

	uc := NewGetTicketStatsUseCase(tickets, logger.NewNopLogger())
	stats, err := uc.Execute(context.Background(), GetTicketStatsQuery{OwnerID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalTickets)
	assert.Equal(t, 2, stats.OpenTickets)
	assert.Equal(t, 1, stats.InProgressTickets)
	assert.Equal(t, 0, stats.ResolvedToday)
	assert.Equal(t, 1, stats.ByStatus["closed"])
	assert.Equal(t, 0, stats.ByStatus["resolved"])
	assert.Equal(t, 4, stats.ByPriority["medium"])
}
