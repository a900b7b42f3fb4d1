package ticket

import "context"

// TicketStore persists tickets for an owner. Every method is scoped by owner
// before any other predicate. Missing tickets surface as a not-found error.
type TicketStore interface {
	Create(ctx context.Context, t *Ticket) error
	// List returns the owner's tickets. Implementations may push parts of
	// filter down to storage; callers still apply the filter and ordering.
	List(ctx context.Context, ownerID string, filter Filter) ([]*Ticket, error)
	Get(ctx context.Context, ownerID, id string) (*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ownerID, id string) error
	Count(ctx context.Context, ownerID string) (int64, error)
}

// MessageStore persists ticket messages for an owner.
type MessageStore interface {
	Create(ctx context.Context, m *Message) error
	ListByTicket(ctx context.Context, ownerID, ticketID string) ([]*Message, error)
	// CountByTickets returns the number of messages per ticket id. Tickets
	// without messages may be absent from the map.
	CountByTickets(ctx context.Context, ownerID string, ticketIDs []string) (map[string]int, error)
}

// SeedMarkerStore records which owners have already received the sample
// tickets, so emptying a collection does not bring the samples back.
type SeedMarkerStore interface {
	IsSeeded(ctx context.Context, ownerID string) (bool, error)
	// MarkSeeded is idempotent.
	MarkSeeded(ctx context.Context, ownerID string) error
}
