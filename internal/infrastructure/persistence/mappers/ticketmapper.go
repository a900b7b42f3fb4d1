package mappers

import (
	"fmt"
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/mapper"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// ToDomainList converts a slice of models, failing on the first bad row.
	ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error)

	// MessageToModel converts a message domain entity to a persistence model.
	MessageToModel(m *ticket.Message) *models.TicketMessageModel

	// MessageToDomain converts a message persistence model to a domain entity.
	MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error)

	// MessageToDomainList converts a slice of message models.
	MessageToDomainList(list []*models.TicketMessageModel) ([]*ticket.Message, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:            t.ID(),
		UserID:        t.OwnerID(),
		Title:         t.Title(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		Category:      t.Category(),
		CustomerName:  t.CustomerName(),
		CustomerEmail: t.CustomerEmail(),
		MessageCount:  t.MessageCount(),
		CreatedAt:     biztime.FormatTimestamp(t.CreatedAt()),
		UpdatedAt:     biztime.FormatTimestamp(t.UpdatedAt()),
	}

	if agent := t.AssignedAgent(); agent != nil {
		model.AssignedAgentID = optionalString(agent.ID)
		model.AssignedAgentName = optionalString(agent.Name)
	}

	if t.ResolvedAt() != nil {
		resolved := biztime.FormatTimestamp(*t.ResolvedAt())
		model.ResolvedAt = &resolved
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, fmt.Errorf("ticket model is nil")
	}

	createdAt, err := biztime.ParseTimestamp(model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: created_at: %w", model.ID, err)
	}
	updatedAt, err := biztime.ParseTimestamp(model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: updated_at: %w", model.ID, err)
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil && *model.ResolvedAt != "" {
		t, err := biztime.ParseTimestamp(*model.ResolvedAt)
		if err != nil {
			return nil, fmt.Errorf("ticket %s: resolved_at: %w", model.ID, err)
		}
		resolvedAt = &t
	}

	var agent *ticket.AgentRef
	if model.AssignedAgentID != nil || model.AssignedAgentName != nil {
		agent = &ticket.AgentRef{
			ID:   derefString(model.AssignedAgentID),
			Name: derefString(model.AssignedAgentName),
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.Category,
		model.CustomerName,
		model.CustomerEmail,
		agent,
		model.MessageCount,
		createdAt,
		updatedAt,
		resolvedAt,
	)
}

func (m *TicketMapperImpl) ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error) {
	result, err := mapper.MapSliceWithID(list, m.ToDomain, func(model *models.TicketModel) string {
		return model.ID
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*ticket.Ticket{}
	}
	return result, nil
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.TicketMessageModel {
	return &models.TicketMessageModel{
		ID:          msg.ID(),
		UserID:      msg.OwnerID(),
		TicketID:    msg.TicketID(),
		AuthorName:  msg.AuthorName(),
		AuthorEmail: msg.AuthorEmail(),
		Message:     msg.Body(),
		IsInternal:  msg.IsInternal(),
		CreatedAt:   biztime.FormatTimestamp(msg.CreatedAt()),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error) {
	if model == nil {
		return nil, fmt.Errorf("message model is nil")
	}

	createdAt, err := biztime.ParseTimestamp(model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("message %s: created_at: %w", model.ID, err)
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Message,
		model.AuthorName,
		model.AuthorEmail,
		model.IsInternal,
		createdAt,
	)
}

func (m *TicketMapperImpl) MessageToDomainList(list []*models.TicketMessageModel) ([]*ticket.Message, error) {
	result, err := mapper.MapSliceWithID(list, m.MessageToDomain, func(model *models.TicketMessageModel) string {
		return model.ID
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*ticket.Message{}
	}
	return result, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
