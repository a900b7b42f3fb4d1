package usecases

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func fixedSample(t *testing.T) SampleProvider {
	return func(ownerID string, now time.Time) ([]*ticket.Ticket, []*ticket.Message, error) {
		tickets := []*ticket.Ticket{
			newTestTicket(t, "T-001", vo.StatusOpen, now),
			newTestTicket(t, "T-002", vo.StatusOpen, now),
		}
		msg, err := ticket.NewMessage("msg-1", "T-001", ownerID, "hi", "A", "a@example.com", false, now)
		require.NoError(t, err)
		return tickets, []*ticket.Message{msg}, nil
	}
}

func TestSeedSampleDataUseCase_Execute(t *testing.T) {
	t.Run("non-empty owner is left alone and marked", func(t *testing.T) {
		tickets := &mockTicketStore{
			CountFunc: func(ctx context.Context, ownerID string) (int64, error) { return 1, nil },
			CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				t.Fatal("must not seed a non-empty owner")
				return nil
			},
		}
		markers := &mockSeedMarkerStore{}
		uc := NewSeedSampleDataUseCase(tickets, &mockMessageStore{}, markers, fixedSample(t), logger.NewNopLogger())

		seeded, err := uc.Execute(context.Background(), "user-1")
		require.NoError(t, err)
		assert.False(t, seeded)
		assert.Equal(t, []string{"user-1"}, markers.marked)
	})

	t.Run("marked owner with no tickets is not seeded again", func(t *testing.T) {
		tickets := &mockTicketStore{
			CountFunc: func(ctx context.Context, ownerID string) (int64, error) {
				t.Fatal("marker must be checked before counting")
				return 0, nil
			},
			CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				t.Fatal("must not seed a marked owner")
				return nil
			},
		}
		markers := &mockSeedMarkerStore{
			IsSeededFunc: func(ctx context.Context, ownerID string) (bool, error) { return true, nil },
		}
		uc := NewSeedSampleDataUseCase(tickets, &mockMessageStore{}, markers, fixedSample(t), logger.NewNopLogger())

		seeded, err := uc.Execute(context.Background(), "user-1")
		require.NoError(t, err)
		assert.False(t, seeded)
		assert.Empty(t, markers.marked)
	})

	t.Run("marker errors surface", func(t *testing.T) {
		markers := &mockSeedMarkerStore{
			IsSeededFunc: func(ctx context.Context, ownerID string) (bool, error) { return false, assert.AnError },
		}
		uc := NewSeedSampleDataUseCase(&mockTicketStore{}, &mockMessageStore{}, markers, fixedSample(t), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), "user-1")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("empty owner is seeded", func(t *testing.T) {
		var created []string
		var messages int
		tickets := &mockTicketStore{
			CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				created = append(created, tk.ID())
				return nil
			},
		}
		msgStore := &mockMessageStore{
			CreateFunc: func(ctx context.Context, m *ticket.Message) error {
				messages++
				return nil
			},
		}
		markers := &mockSeedMarkerStore{}
		uc := NewSeedSampleDataUseCase(tickets, msgStore, markers, fixedSample(t), logger.NewNopLogger())

		seeded, err := uc.Execute(context.Background(), "user-1")
		require.NoError(t, err)
		assert.True(t, seeded)
		assert.Equal(t, []string{"T-001", "T-002"}, created)
		assert.Equal(t, 1, messages)
		assert.Equal(t, []string{"user-1"}, markers.marked)
	})

	t.Run("duplicates are swallowed", func(t *testing.T) {
		tickets := &mockTicketStore{
			CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return errors.NewConflictError("ticket already exists")
			},
		}
		msgStore := &mockMessageStore{
			CreateFunc: func(ctx context.Context, m *ticket.Message) error {
				return errors.NewConflictError("message already exists")
			},
		}
		uc := NewSeedSampleDataUseCase(tickets, msgStore, &mockSeedMarkerStore{}, fixedSample(t), logger.NewNopLogger())

		seeded, err := uc.Execute(context.Background(), "user-1")
		require.NoError(t, err)
		assert.False(t, seeded)
	})

	t.Run("other store errors surface", func(t *testing.T) {
		tickets := &mockTicketStore{
			CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error { return assert.AnError },
		}
		markers := &mockSeedMarkerStore{}
		uc := NewSeedSampleDataUseCase(tickets, &mockMessageStore{}, markers, fixedSample(t), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), "user-1")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, markers.marked)
	})
}

func TestSeedSampleDataUseCase_Execute_ConcurrentCallsShareOneRun(t *testing.T) {
	var counts atomic.Int32
	release := make(chan struct{})
	tickets := &mockTicketStore{
		CountFunc: func(ctx context.Context, ownerID string) (int64, error) {
			counts.Add(1)
			<-release
			return 1, nil
		},
	}
	uc := NewSeedSampleDataUseCase(tickets, &mockMessageStore{}, &mockSeedMarkerStore{}, fixedSample(t), logger.NewNopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Execute(context.Background(), "user-1")
		}()
	}

	// give the callers time to join the in-flight run
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), counts.Load())
}
