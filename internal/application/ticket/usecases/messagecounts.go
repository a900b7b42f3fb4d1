package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
)

// applyMessageCounts replaces each ticket's cached count with the number of
// messages actually stored for it.
func applyMessageCounts(ctx context.Context, messages ticket.MessageStore, ownerID string, tickets ...*ticket.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID())
	}

	counts, err := messages.CountByTickets(ctx, ownerID, ids)
	if err != nil {
		return fmt.Errorf("failed to count messages: %w", err)
	}

	for _, t := range tickets {
		t.SetMessageCount(counts[t.ID()])
	}
	return nil
}
