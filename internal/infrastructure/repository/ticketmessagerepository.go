package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

type TicketMessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketMessageRepository(db *gorm.DB) *TicketMessageRepository {
	return &TicketMessageRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketMessageRepository) Create(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("message already exists", model.ID)
		}
		return fmt.Errorf("failed to create ticket message: %w", err)
	}
	return nil
}

// ListByTicket returns messages oldest first, including messages whose
// ticket has been deleted.
func (r *TicketMessageRepository) ListByTicket(ctx context.Context, ownerID, ticketID string) ([]*ticket.Message, error) {
	var messageModels []*models.TicketMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.OwnedBy(ownerID)).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket messages: %w", err)
	}

	return r.mapper.MessageToDomainList(messageModels)
}

type ticketMessageCount struct {
	TicketID string
	Total    int
}

func (r *TicketMessageRepository) CountByTickets(ctx context.Context, ownerID string, ticketIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return counts, nil
	}

	var rows []ticketMessageCount
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketMessageModel{}).
		Select("ticket_id, COUNT(*) AS total").
		Scopes(db.OwnedBy(ownerID)).
		Where("ticket_id IN ?", ticketIDs).
		Group("ticket_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count ticket messages: %w", err)
	}

	for _, row := range rows {
		counts[row.TicketID] = row.Total
	}
	return counts, nil
}
