package seeds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
)

func TestSample(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tickets, messages, err := Sample("user-1", now)
	require.NoError(t, err)
	require.Len(t, tickets, 3)

	ids := []string{tickets[0].ID(), tickets[1].ID(), tickets[2].ID()}
	assert.Equal(t, []string{"T-001", "T-002", "T-003"}, ids)

	payment := tickets[1]
	assert.Equal(t, "Payment processing error", payment.Title())
	assert.Equal(t, vo.StatusInProgress, payment.Status())
	assert.Equal(t, vo.PriorityUrgent, payment.Priority())
	assert.Equal(t, "Mike Johnson", payment.AssignedAgent().Name)
	assert.Equal(t, now.Add(-4*time.Hour), payment.CreatedAt())
	assert.Equal(t, now.Add(-15*time.Minute), payment.UpdatedAt())
	assert.Equal(t, 7, payment.MessageCount())

	assert.Nil(t, tickets[2].AssignedAgent())
	assert.Equal(t, "Feature request: Dark mode", tickets[2].Title())

	require.Len(t, messages, 11)
	for _, m := range messages {
		assert.Equal(t, "user-1", m.OwnerID())
		assert.False(t, m.CreatedAt().After(now))
	}
}
