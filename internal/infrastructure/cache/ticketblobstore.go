package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const (
	collectionTickets  = "tickets"
	collectionMessages = "messages"
)

// TicketBlobStore is the local ticket store: each owner's tickets live in one
// JSON blob at "<prefix>_tickets_<ownerID>".
type TicketBlobStore struct {
	blob   jsonBlob[*models.TicketModel]
	prefix string
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketBlobStore(client *redis.Client, prefix string, log logger.Interface) *TicketBlobStore {
	log = log.With("component", "cache.ticket_blob")
	return &TicketBlobStore{
		blob:   jsonBlob[*models.TicketModel]{client: client, logger: log},
		prefix: prefix,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

func (s *TicketBlobStore) key(ownerID string) string {
	return blobKey(s.prefix, collectionTickets, ownerID)
}

// Create puts the new ticket at the head of the owner's blob.
func (s *TicketBlobStore) Create(ctx context.Context, t *ticket.Ticket) error {
	model := s.mapper.ToModel(t)
	return s.blob.mutate(ctx, s.key(t.OwnerID()), func(records []*models.TicketModel) ([]*models.TicketModel, error) {
		if indexOfTicket(records, model.ID) >= 0 {
			return nil, errors.NewConflictError("ticket already exists", model.ID)
		}
		return append([]*models.TicketModel{model}, records...), nil
	})
}

// List returns every readable ticket in the owner's blob in stored order.
// Filtering and ordering are left to the caller.
func (s *TicketBlobStore) List(ctx context.Context, ownerID string, _ ticket.Filter) ([]*ticket.Ticket, error) {
	records, err := s.blob.load(ctx, s.blob.client, s.key(ownerID))
	if err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, 0, len(records))
	for _, record := range records {
		if record == nil || record.UserID != ownerID {
			continue
		}
		t, err := s.mapper.ToDomain(record)
		if err != nil {
			s.logger.Warnw("skipping unreadable ticket record", "owner_id", ownerID, "error", err)
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (s *TicketBlobStore) Get(ctx context.Context, ownerID, id string) (*ticket.Ticket, error) {
	records, err := s.blob.load(ctx, s.blob.client, s.key(ownerID))
	if err != nil {
		return nil, err
	}

	i := indexOfTicket(records, id)
	if i < 0 || records[i].UserID != ownerID {
		return nil, errors.NewNotFoundError("ticket not found", id)
	}
	return s.mapper.ToDomain(records[i])
}

func (s *TicketBlobStore) Update(ctx context.Context, t *ticket.Ticket) error {
	model := s.mapper.ToModel(t)
	return s.blob.mutate(ctx, s.key(t.OwnerID()), func(records []*models.TicketModel) ([]*models.TicketModel, error) {
		i := indexOfTicket(records, model.ID)
		if i < 0 {
			return nil, errors.NewNotFoundError("ticket not found", model.ID)
		}
		model.CreatedAt = records[i].CreatedAt
		records[i] = model
		return records, nil
	})
}

// Delete removes the ticket from the owner's blob. Messages are untouched.
func (s *TicketBlobStore) Delete(ctx context.Context, ownerID, id string) error {
	return s.blob.mutate(ctx, s.key(ownerID), func(records []*models.TicketModel) ([]*models.TicketModel, error) {
		i := indexOfTicket(records, id)
		if i < 0 {
			return nil, errors.NewNotFoundError("ticket not found", id)
		}
		return append(records[:i], records[i+1:]...), nil
	})
}

func (s *TicketBlobStore) Count(ctx context.Context, ownerID string) (int64, error) {
	records, err := s.blob.load(ctx, s.blob.client, s.key(ownerID))
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

func indexOfTicket(records []*models.TicketModel, id string) int {
	for i, r := range records {
		if r != nil && r.ID == id {
			return i
		}
	}
	return -1
}

// TicketMessageBlobStore keeps each owner's messages in one JSON blob at
// "<prefix>_messages_<ownerID>".
type TicketMessageBlobStore struct {
	blob   jsonBlob[*models.TicketMessageModel]
	prefix string
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketMessageBlobStore(client *redis.Client, prefix string, log logger.Interface) *TicketMessageBlobStore {
	log = log.With("component", "cache.message_blob")
	return &TicketMessageBlobStore{
		blob:   jsonBlob[*models.TicketMessageModel]{client: client, logger: log},
		prefix: prefix,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

func (s *TicketMessageBlobStore) key(ownerID string) string {
	return blobKey(s.prefix, collectionMessages, ownerID)
}

func (s *TicketMessageBlobStore) Create(ctx context.Context, m *ticket.Message) error {
	model := s.mapper.MessageToModel(m)
	return s.blob.mutate(ctx, s.key(m.OwnerID()), func(records []*models.TicketMessageModel) ([]*models.TicketMessageModel, error) {
		for _, r := range records {
			if r != nil && r.ID == model.ID {
				return nil, errors.NewConflictError("message already exists", model.ID)
			}
		}
		return append(records, model), nil
	})
}

// ListByTicket returns the ticket's messages oldest first. Messages of
// deleted tickets are still returned.
func (s *TicketMessageBlobStore) ListByTicket(ctx context.Context, ownerID, ticketID string) ([]*ticket.Message, error) {
	records, err := s.blob.load(ctx, s.blob.client, s.key(ownerID))
	if err != nil {
		return nil, err
	}

	messages := make([]*ticket.Message, 0)
	for _, record := range records {
		if record == nil || record.TicketID != ticketID || record.UserID != ownerID {
			continue
		}
		m, err := s.mapper.MessageToDomain(record)
		if err != nil {
			s.logger.Warnw("skipping unreadable message record", "owner_id", ownerID, "error", err)
			continue
		}
		messages = append(messages, m)
	}

	ticket.SortMessagesOldestFirst(messages)
	return messages, nil
}

func (s *TicketMessageBlobStore) CountByTickets(ctx context.Context, ownerID string, ticketIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return counts, nil
	}

	records, err := s.blob.load(ctx, s.blob.client, s.key(ownerID))
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(ticketIDs))
	for _, id := range ticketIDs {
		wanted[id] = true
	}
	for _, record := range records {
		if record != nil && wanted[record.TicketID] {
			counts[record.TicketID]++
		}
	}
	return counts, nil
}
