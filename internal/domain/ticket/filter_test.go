package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
)

func fixtureTickets(t *testing.T) []*Ticket {
	t.Helper()
	mk := func(id, title, customer string, status vo.TicketStatus, priority vo.Priority, age time.Duration) *Ticket {
		tk, err := ReconstructTicket(id, "owner-1", title, "", status, priority, "General",
			customer, "", nil, 0, baseTime.Add(-age), baseTime.Add(-age), nil)
		require.NoError(t, err)
		return tk
	}
	return []*Ticket{
		mk("T-001", "Login issues with mobile app", "John Doe", vo.StatusOpen, vo.PriorityHigh, 2*time.Hour),
		mk("T-002", "Payment processing error", "Jane Smith", vo.StatusInProgress, vo.PriorityUrgent, 4*time.Hour),
		mk("T-003", "Feature request: Dark mode", "Alex Chen", vo.StatusOpen, vo.PriorityLow, 24*time.Hour),
	}
}

func ids(tickets []*Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID())
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	tickets := fixtureTickets(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "empty filter", filter: Filter{}, want: []string{"T-001", "T-002", "T-003"}},
		{name: "all is no constraint", filter: Filter{Status: "all", Priority: "all"}, want: []string{"T-001", "T-002", "T-003"}},
		{name: "status", filter: Filter{Status: "open"}, want: []string{"T-001", "T-003"}},
		{name: "priority", filter: Filter{Priority: "urgent"}, want: []string{"T-002"}},
		{name: "status and priority", filter: Filter{Status: "open", Priority: "low"}, want: []string{"T-003"}},
		{name: "search title case-insensitive", filter: Filter{Search: "PAYMENT"}, want: []string{"T-002"}},
		{name: "search customer", filter: Filter{Search: "chen"}, want: []string{"T-003"}},
		{name: "search id", filter: Filter{Search: "t-001"}, want: []string{"T-001"}},
		{name: "search and status", filter: Filter{Search: "mode", Status: "in_progress"}, want: []string{}},
		{name: "unknown status matches nothing", filter: Filter{Status: "pending"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(tickets)))
		})
	}
}

func TestFilter_SearchIgnoresCustomerEmail(t *testing.T) {
	tk, err := ReconstructTicket("T-010", "owner-1", "Refund request", "", vo.StatusOpen, vo.PriorityLow, "",
		"Mia Park", "billing@globex.example", nil, 0, baseTime, baseTime, nil)
	require.NoError(t, err)

	assert.Empty(t, Filter{Search: "globex"}.Apply([]*Ticket{tk}))
	assert.Len(t, Filter{Search: "park"}.Apply([]*Ticket{tk}), 1)
	assert.Len(t, Filter{Search: "t-010"}.Apply([]*Ticket{tk}), 1)
}

func TestFilter_IsEmpty(t *testing.T) {
	assert.True(t, Filter{}.IsEmpty())
	assert.True(t, Filter{Status: FilterAll, Search: "  "}.IsEmpty())
	assert.False(t, Filter{Priority: "low"}.IsEmpty())
}

func TestSortNewestFirst(t *testing.T) {
	tickets := fixtureTickets(t)
	tickets[0], tickets[2] = tickets[2], tickets[0]

	SortNewestFirst(tickets)

	assert.Equal(t, []string{"T-001", "T-002", "T-003"}, ids(tickets))
}

func TestSortMessagesOldestFirst(t *testing.T) {
	a, err := NewMessage("msg-a", "T-1", "o", "a", "", "", false, baseTime.Add(time.Minute))
	require.NoError(t, err)
	b, err := NewMessage("msg-b", "T-1", "o", "b", "", "", false, baseTime)
	require.NoError(t, err)
	msgs := []*Message{a, b}

	SortMessagesOldestFirst(msgs)

	assert.Equal(t, "msg-b", msgs[0].ID())
}
