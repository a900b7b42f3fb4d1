package dto

import (
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Status            string  `json:"status"`
	Priority          string  `json:"priority"`
	Category          string  `json:"category"`
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	AssignedAgentID   *string `json:"assigned_agent_id"`
	AssignedAgentName *string `json:"assigned_agent_name"`
	UserID            string  `json:"user_id"`
	MessageCount      int     `json:"message_count"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
	ResolvedAt        *string `json:"resolved_at,omitempty"`
}

type MessageDTO struct {
	ID          string `json:"id"`
	TicketID    string `json:"ticket_id"`
	UserID      string `json:"user_id"`
	Message     string `json:"message"`
	MessageHTML string `json:"message_html,omitempty"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	IsInternal  bool   `json:"is_internal"`
	CreatedAt   string `json:"created_at"`
}

type StatsDTO struct {
	OpenTickets       int            `json:"open_tickets"`
	InProgressTickets int            `json:"in_progress_tickets"`
	ResolvedToday     int            `json:"resolved_today"`
	TotalTickets      int            `json:"total_tickets"`
	ByStatus          map[string]int `json:"by_status"`
	ByPriority        map[string]int `json:"by_priority"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	d := &TicketDTO{
		ID:            t.ID(),
		Title:         t.Title(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		Category:      t.Category(),
		CustomerName:  t.CustomerName(),
		CustomerEmail: t.CustomerEmail(),
		UserID:        t.OwnerID(),
		MessageCount:  t.MessageCount(),
		CreatedAt:     biztime.FormatTimestamp(t.CreatedAt()),
		UpdatedAt:     biztime.FormatTimestamp(t.UpdatedAt()),
	}

	if agent := t.AssignedAgent(); agent != nil {
		if agent.ID != "" {
			d.AssignedAgentID = &agent.ID
		}
		if agent.Name != "" {
			d.AssignedAgentName = &agent.Name
		}
	}

	if at := t.ResolvedAt(); at != nil {
		formatted := biztime.FormatTimestamp(*at)
		d.ResolvedAt = &formatted
	}

	return d
}

// ToTicketDTOList never returns nil so an empty collection encodes as [].
func ToTicketDTOList(tickets []*ticket.Ticket) []*TicketDTO {
	if len(tickets) == 0 {
		return []*TicketDTO{}
	}
	return mapper.MapSlice(tickets, ToTicketDTO)
}

// ToMessageDTO converts m. html is the rendered body, empty when rendering is skipped.
func ToMessageDTO(m *ticket.Message, html string) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:          m.ID(),
		TicketID:    m.TicketID(),
		UserID:      m.OwnerID(),
		Message:     m.Body(),
		MessageHTML: html,
		AuthorName:  m.AuthorName(),
		AuthorEmail: m.AuthorEmail(),
		IsInternal:  m.IsInternal(),
		CreatedAt:   biztime.FormatTimestamp(m.CreatedAt()),
	}
}

func ToStatsDTO(s ticket.Stats) *StatsDTO {
	d := &StatsDTO{
		OpenTickets:       s.OpenTickets,
		InProgressTickets: s.InProgressTickets,
		ResolvedToday:     s.ResolvedToday,
		TotalTickets:      s.TotalTickets,
		ByStatus:          make(map[string]int, len(s.ByStatus)),
		ByPriority:        make(map[string]int, len(s.ByPriority)),
	}
	for k, v := range s.ByStatus {
		d.ByStatus[k.String()] = v
	}
	for k, v := range s.ByPriority {
		d.ByPriority[k.String()] = v
	}
	return d
}
