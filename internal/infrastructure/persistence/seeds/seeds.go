// Package seeds provides the fixed sample tickets inserted for a new owner.
package seeds

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
)

//go:embed sample_tickets.yaml
var sampleTicketsYAML []byte

type sampleFile struct {
	Tickets []sampleTicket `yaml:"tickets"`
}

type sampleTicket struct {
	ID                string          `yaml:"id"`
	Title             string          `yaml:"title"`
	Description       string          `yaml:"description"`
	CustomerName      string          `yaml:"customer_name"`
	CustomerEmail     string          `yaml:"customer_email"`
	AssignedAgentName string          `yaml:"assigned_agent_name"`
	Priority          string          `yaml:"priority"`
	Status            string          `yaml:"status"`
	Category          string          `yaml:"category"`
	CreatedAgo        time.Duration   `yaml:"created_ago"`
	UpdatedAgo        time.Duration   `yaml:"updated_ago"`
	Messages          []sampleMessage `yaml:"messages"`
}

type sampleMessage struct {
	AuthorName  string        `yaml:"author_name"`
	AuthorEmail string        `yaml:"author_email"`
	Body        string        `yaml:"body"`
	Ago         time.Duration `yaml:"ago"`
	Internal    bool          `yaml:"internal"`
}

// Sample builds the sample records for ownerID with timestamps relative to now.
// Ticket ids are fixed so that a repeated insert collides instead of duplicating.
func Sample(ownerID string, now time.Time) ([]*ticket.Ticket, []*ticket.Message, error) {
	var file sampleFile
	if err := yaml.Unmarshal(sampleTicketsYAML, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse sample tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(file.Tickets))
	var messages []*ticket.Message
	for _, st := range file.Tickets {
		var agent *ticket.AgentRef
		if st.AssignedAgentName != "" {
			agent = &ticket.AgentRef{Name: st.AssignedAgentName}
		}

		createdAt := now.Add(-st.CreatedAgo).UTC().Truncate(time.Millisecond)
		updatedAt := now.Add(-st.UpdatedAgo).UTC().Truncate(time.Millisecond)

		t, err := ticket.ReconstructTicket(
			st.ID,
			ownerID,
			st.Title,
			st.Description,
			vo.TicketStatus(st.Status),
			vo.Priority(st.Priority),
			st.Category,
			st.CustomerName,
			st.CustomerEmail,
			agent,
			len(st.Messages),
			createdAt,
			updatedAt,
			nil,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid sample ticket %s: %w", st.ID, err)
		}
		tickets = append(tickets, t)

		for i, sm := range st.Messages {
			m, err := ticket.NewMessage(
				fmt.Sprintf("msg-%s-%d", st.ID, i+1),
				st.ID,
				ownerID,
				sm.Body,
				sm.AuthorName,
				sm.AuthorEmail,
				sm.Internal,
				now.Add(-sm.Ago),
			)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid sample message for %s: %w", st.ID, err)
			}
			messages = append(messages, m)
		}
	}

	return tickets, messages, nil
}
