package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database/dbtest"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

var baseTime = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func newTicket(t *testing.T, id, owner string, priority vo.Priority, created time.Time) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(id, owner, "Ticket "+id, "Description", priority, "General",
		"Customer "+id, "customer@example.com", nil, created)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_CreateAndGet(t *testing.T) {
	repo := NewTicketRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	tk := newTicket(t, "T-1", "owner-a", vo.PriorityHigh, baseTime)
	require.NoError(t, repo.Create(ctx, tk))

	found, err := repo.Get(ctx, "owner-a", "T-1")
	require.NoError(t, err)
	assert.Equal(t, tk.Title(), found.Title())
	assert.Equal(t, vo.StatusOpen, found.Status())
	assert.True(t, tk.CreatedAt().Equal(found.CreatedAt()))

	t.Run("other owner cannot see it", func(t *testing.T) {
		_, err := repo.Get(ctx, "owner-b", "T-1")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("duplicate id for same owner conflicts", func(t *testing.T) {
		err := repo.Create(ctx, newTicket(t, "T-1", "owner-a", vo.PriorityLow, baseTime))
		assert.True(t, errors.IsConflictError(err))
		assert.True(t, errors.IsDuplicateError(err))
	})

	t.Run("same id for another owner is allowed", func(t *testing.T) {
		assert.NoError(t, repo.Create(ctx, newTicket(t, "T-1", "owner-b", vo.PriorityLow, baseTime)))
	})
}

func TestTicketRepository_ListScopesAndOrders(t *testing.T) {
	repo := NewTicketRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTicket(t, "T-old", "owner-a", vo.PriorityLow, baseTime.Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, newTicket(t, "T-new", "owner-a", vo.PriorityUrgent, baseTime)))
	require.NoError(t, repo.Create(ctx, newTicket(t, "T-other", "owner-b", vo.PriorityUrgent, baseTime)))

	list, err := repo.List(ctx, "owner-a", ticket.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "T-new", list[0].ID())
	assert.Equal(t, "T-old", list[1].ID())
	for _, tk := range list {
		assert.Equal(t, "owner-a", tk.OwnerID())
	}

	list, err = repo.List(ctx, "owner-a", ticket.Filter{Priority: "urgent", Status: ticket.FilterAll})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "T-new", list[0].ID())

	count, err := repo.Count(ctx, "owner-a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTicketRepository_Update(t *testing.T) {
	repo := NewTicketRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	tk := newTicket(t, "T-1", "owner-a", vo.PriorityHigh, baseTime)
	require.NoError(t, repo.Create(ctx, tk))

	closed := vo.StatusClosed
	require.NoError(t, tk.Update(ticket.Changes{Status: &closed, AssignedAgent: &ticket.AgentRef{Name: "Sarah"}}, baseTime.Add(time.Minute)))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.Get(ctx, "owner-a", "T-1")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed, found.Status())
	assert.Equal(t, "Sarah", found.AssignedAgent().Name)
	assert.True(t, found.UpdatedAt().After(found.CreatedAt()))

	t.Run("missing ticket", func(t *testing.T) {
		ghost := newTicket(t, "T-ghost", "owner-a", vo.PriorityLow, baseTime)
		assert.True(t, errors.IsNotFoundError(repo.Update(ctx, ghost)))
	})

	t.Run("wrong owner", func(t *testing.T) {
		foreign := newTicket(t, "T-1", "owner-b", vo.PriorityLow, baseTime)
		assert.True(t, errors.IsNotFoundError(repo.Update(ctx, foreign)))

		found, err := repo.Get(ctx, "owner-a", "T-1")
		require.NoError(t, err)
		assert.Equal(t, vo.PriorityHigh, found.Priority())
	})
}

func TestTicketRepository_Delete(t *testing.T) {
	repo := NewTicketRepository(dbtest.NewSQLite(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTicket(t, "T-1", "owner-a", vo.PriorityHigh, baseTime)))

	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, "owner-b", "T-1")))
	require.NoError(t, repo.Delete(ctx, "owner-a", "T-1"))
	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, "owner-a", "T-1")))

	_, err := repo.Get(ctx, "owner-a", "T-1")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_TransactionRollback(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	repo := NewTicketRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		require.NoError(t, repo.Create(txCtx, newTicket(t, "T-1", "owner-a", vo.PriorityHigh, baseTime)))
		return errors.NewInternalError("abort")
	})
	require.Error(t, err)

	count, err := repo.Count(ctx, "owner-a")
	require.NoError(t, err)
	assert.Zero(t, count)
}
