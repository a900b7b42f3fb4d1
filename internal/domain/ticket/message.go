package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const maxMessageLength = 10000

// Message is a reply or internal note attached to a ticket. ticketID is a
// plain back-reference; deleting the ticket leaves its messages in place.
type Message struct {
	id          string
	ticketID    string
	ownerID     string
	authorName  string
	authorEmail string
	body        string
	isInternal  bool
	createdAt   time.Time
}

func NewMessage(
	id string,
	ticketID string,
	ownerID string,
	body string,
	authorName string,
	authorEmail string,
	isInternal bool,
	now time.Time,
) (*Message, error) {
	if id == "" {
		return nil, fmt.Errorf("message ID is required")
	}
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if utf8.RuneCountInString(body) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Message{
		id:          id,
		ticketID:    ticketID,
		ownerID:     ownerID,
		authorName:  authorName,
		authorEmail: authorEmail,
		body:        body,
		isInternal:  isInternal,
		createdAt:   stamp(now),
	}, nil
}

func ReconstructMessage(
	id string,
	ticketID string,
	ownerID string,
	body string,
	authorName string,
	authorEmail string,
	isInternal bool,
	createdAt time.Time,
) (*Message, error) {
	if id == "" {
		return nil, fmt.Errorf("message ID is required")
	}
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Message{
		id:          id,
		ticketID:    ticketID,
		ownerID:     ownerID,
		authorName:  authorName,
		authorEmail: authorEmail,
		body:        body,
		isInternal:  isInternal,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() string {
	return m.id
}

func (m *Message) TicketID() string {
	return m.ticketID
}

func (m *Message) OwnerID() string {
	return m.ownerID
}

func (m *Message) AuthorName() string {
	return m.authorName
}

func (m *Message) AuthorEmail() string {
	return m.authorEmail
}

func (m *Message) Body() string {
	return m.body
}

func (m *Message) IsInternal() bool {
	return m.isInternal
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}
