package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/mapper"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.DirectoryMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db, mapper: mappers.NewDirectoryMapper()}
}

func (r *CustomerRepository) Create(ctx context.Context, c *directory.Customer) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.CustomerToModel(c)).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("customer with this email already exists", c.Email())
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) List(ctx context.Context, ownerID string) ([]*directory.Customer, error) {
	var rows []*models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.OwnedBy(ownerID)).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return mapper.MapSliceWithError(rows, r.mapper.CustomerToDomain)
}

type AgentRepository struct {
	db     *gorm.DB
	mapper mappers.DirectoryMapper
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db, mapper: mappers.NewDirectoryMapper()}
}

func (r *AgentRepository) Create(ctx context.Context, a *directory.Agent) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.AgentToModel(a)).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("agent with this email already exists", a.Email())
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

func (r *AgentRepository) List(ctx context.Context, ownerID string) ([]*directory.Agent, error) {
	var rows []*models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.OwnedBy(ownerID)).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return mapper.MapSliceWithError(rows, r.mapper.AgentToDomain)
}
