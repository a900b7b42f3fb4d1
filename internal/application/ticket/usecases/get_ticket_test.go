package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	tickets := &mockTicketStore{
		GetFunc: func(ctx context.Context, ownerID, id string) (*ticket.Ticket, error) {
			if id == "T-001" {
				return newTestTicket(t, "T-001", vo.StatusInProgress, time.Now()), nil
			}
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	messages := &mockMessageStore{
		CountByTicketsFunc: func(ctx context.Context, ownerID string, ids []string) (map[string]int, error) {
			return map[string]int{"T-001": 3}, nil
		},
	}
	uc := NewGetTicketUseCase(tickets, messages, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), GetTicketQuery{OwnerID: "user-1", TicketID: "T-001"})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	assert.Equal(t, 3, result.MessageCount)

	_, err = uc.Execute(context.Background(), GetTicketQuery{OwnerID: "user-1", TicketID: "T-404"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	var deleted string
	tickets := &mockTicketStore{
		DeleteFunc: func(ctx context.Context, ownerID, id string) error {
			if id == "T-404" {
				return errors.NewNotFoundError("ticket not found")
			}
			deleted = id
			return nil
		},
	}
	uc := NewDeleteTicketUseCase(tickets, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteTicketCommand{OwnerID: "user-1", TicketID: "T-001"}))
	assert.Equal(t, "T-001", deleted)

	err := uc.Execute(context.Background(), DeleteTicketCommand{OwnerID: "user-1", TicketID: "T-404"})
	assert.True(t, errors.IsNotFoundError(err))

	err = uc.Execute(context.Background(), DeleteTicketCommand{OwnerID: "user-1"})
	assert.True(t, errors.IsValidationError(err))
}
