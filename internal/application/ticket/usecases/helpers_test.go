package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T, id string, status vo.TicketStatus, createdAt time.Time) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id,
		"user-1",
		"Ticket "+id,
		"description",
		status,
		vo.PriorityMedium,
		"General",
		"Customer",
		"customer@example.com",
		nil,
		0,
		createdAt,
		createdAt,
		nil,
	)
	require.NoError(t, err)
	return tk
}
