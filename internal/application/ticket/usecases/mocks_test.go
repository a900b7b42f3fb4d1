package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
)

type mockTicketStore struct {
	CreateFunc func(ctx context.Context, t *ticket.Ticket) error
	ListFunc   func(ctx context.Context, ownerID string, filter ticket.Filter) ([]*ticket.Ticket, error)
	GetFunc    func(ctx context.Context, ownerID, id string) (*ticket.Ticket, error)
	UpdateFunc func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc func(ctx context.Context, ownerID, id string) error
	CountFunc  func(ctx context.Context, ownerID string) (int64, error)
}

func (m *mockTicketStore) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketStore) List(ctx context.Context, ownerID string, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID, filter)
	}
	return nil, nil
}

func (m *mockTicketStore) Get(ctx context.Context, ownerID, id string) (*ticket.Ticket, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ownerID, id)
	}
	return nil, nil
}

func (m *mockTicketStore) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketStore) Delete(ctx context.Context, ownerID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, id)
	}
	return nil
}

func (m *mockTicketStore) Count(ctx context.Context, ownerID string) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, ownerID)
	}
	return 0, nil
}

type mockMessageStore struct {
	CreateFunc         func(ctx context.Context, msg *ticket.Message) error
	ListByTicketFunc   func(ctx context.Context, ownerID, ticketID string) ([]*ticket.Message, error)
	CountByTicketsFunc func(ctx context.Context, ownerID string, ticketIDs []string) (map[string]int, error)
}

func (m *mockMessageStore) Create(ctx context.Context, msg *ticket.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageStore) ListByTicket(ctx context.Context, ownerID, ticketID string) ([]*ticket.Message, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ownerID, ticketID)
	}
	return nil, nil
}

func (m *mockMessageStore) CountByTickets(ctx context.Context, ownerID string, ticketIDs []string) (map[string]int, error) {
	if m.CountByTicketsFunc != nil {
		return m.CountByTicketsFunc(ctx, ownerID, ticketIDs)
	}
	return map[string]int{}, nil
}

type mockSeeder struct {
	ExecuteFunc func(ctx context.Context, ownerID string) (bool, error)
	calls       int
}

func (m *mockSeeder) Execute(ctx context.Context, ownerID string) (bool, error) {
	m.calls++
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, ownerID)
	}
	return false, nil
}

type mockSeedMarkerStore struct {
	IsSeededFunc   func(ctx context.Context, ownerID string) (bool, error)
	MarkSeededFunc func(ctx context.Context, ownerID string) error
	marked         []string
}

func (m *mockSeedMarkerStore) IsSeeded(ctx context.Context, ownerID string) (bool, error) {
	if m.IsSeededFunc != nil {
		return m.IsSeededFunc(ctx, ownerID)
	}
	return false, nil
}

func (m *mockSeedMarkerStore) MarkSeeded(ctx context.Context, ownerID string) error {
	m.marked = append(m.marked, ownerID)
	if m.MarkSeededFunc != nil {
		return m.MarkSeededFunc(ctx, ownerID)
	}
	return nil
}
