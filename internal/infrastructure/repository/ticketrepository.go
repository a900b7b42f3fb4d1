package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// TicketRepository is the remote ticket store backed by a SQL table shared by
// all owners.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("ticket already exists", model.ID)
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

// List pushes the owner, status and priority predicates plus ordering into
// SQL. Free-text search is left to the caller's filter.
func (r *TicketRepository) List(ctx context.Context, ownerID string, filter ticket.Filter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Scopes(db.OwnedBy(ownerID))

	if status, ok := filter.StatusConstraint(); ok {
		query = query.Where("status = ?", status.String())
	}
	if priority, ok := filter.PriorityConstraint(); ok {
		query = query.Where("priority = ?", priority.String())
	}

	var ticketModels []*models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToDomainList(ticketModels)
}

func (r *TicketRepository) Get(ctx context.Context, ownerID, id string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.OwnedBy(ownerID)).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("ticket not found", id)
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Update overwrites every mutable column. Last writer wins.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Scopes(db.OwnedBy(model.UserID)).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found", model.ID)
	}

	return nil
}

// Delete removes the ticket row only; its messages stay behind.
func (r *TicketRepository) Delete(ctx context.Context, ownerID, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Scopes(db.OwnedBy(ownerID)).
		Where("id = ?", id).
		Delete(&models.TicketModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found", id)
	}
	return nil
}

func (r *TicketRepository) Count(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Scopes(db.OwnedBy(ownerID)).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}
