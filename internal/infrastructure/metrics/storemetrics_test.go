package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

type stubTicketStore struct {
	ticket.TicketStore
	getErr error
}

func (s *stubTicketStore) Get(ctx context.Context, ownerID, id string) (*ticket.Ticket, error) {
	return nil, s.getErr
}

func TestTicketStore_ObservesOutcome(t *testing.T) {
	store := NewTicketStore(&stubTicketStore{getErr: errors.NewNotFoundError("ticket not found")}, "test")

	before := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("test", "get", OutcomeNotFound))
	_, err := store.Get(context.Background(), "owner", "T-1")
	require.Error(t, err)

	after := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("test", "get", OutcomeNotFound))
	assert.Equal(t, before+1, after)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, outcome(nil))
	assert.Equal(t, OutcomeConflict, outcome(errors.NewConflictError("dup")))
	assert.Equal(t, OutcomeError, outcome(assert.AnError))
}
