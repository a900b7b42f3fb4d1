package mappers

import (
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

// DirectoryMapper converts customers and agents between domain and persistence.
type DirectoryMapper interface {
	CustomerToModel(c *directory.Customer) *models.CustomerModel
	CustomerToDomain(model *models.CustomerModel) (*directory.Customer, error)
	AgentToModel(a *directory.Agent) *models.AgentModel
	AgentToDomain(model *models.AgentModel) (*directory.Agent, error)
}

type DirectoryMapperImpl struct{}

func NewDirectoryMapper() DirectoryMapper {
	return &DirectoryMapperImpl{}
}

func (m *DirectoryMapperImpl) CustomerToModel(c *directory.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:        c.ID(),
		UserID:    c.OwnerID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Company:   optionalString(c.Company()),
		Phone:     optionalString(c.Phone()),
		CreatedAt: biztime.FormatTimestamp(c.CreatedAt()),
		UpdatedAt: biztime.FormatTimestamp(c.UpdatedAt()),
	}
}

func (m *DirectoryMapperImpl) CustomerToDomain(model *models.CustomerModel) (*directory.Customer, error) {
	createdAt, err := biztime.ParseTimestamp(model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("customer %s: created_at: %w", model.ID, err)
	}
	updatedAt, err := biztime.ParseTimestamp(model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("customer %s: updated_at: %w", model.ID, err)
	}

	return directory.ReconstructCustomer(
		model.ID,
		model.UserID,
		model.Name,
		model.Email,
		derefString(model.Company),
		derefString(model.Phone),
		createdAt,
		updatedAt,
	)
}

func (m *DirectoryMapperImpl) AgentToModel(a *directory.Agent) *models.AgentModel {
	return &models.AgentModel{
		ID:        a.ID(),
		UserID:    a.OwnerID(),
		Name:      a.Name(),
		Email:     a.Email(),
		Role:      a.Role().String(),
		CreatedAt: biztime.FormatTimestamp(a.CreatedAt()),
		UpdatedAt: biztime.FormatTimestamp(a.UpdatedAt()),
	}
}

func (m *DirectoryMapperImpl) AgentToDomain(model *models.AgentModel) (*directory.Agent, error) {
	createdAt, err := biztime.ParseTimestamp(model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("agent %s: created_at: %w", model.ID, err)
	}
	updatedAt, err := biztime.ParseTimestamp(model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("agent %s: updated_at: %w", model.ID, err)
	}

	return directory.ReconstructAgent(
		model.ID,
		model.UserID,
		model.Name,
		model.Email,
		directory.AgentRole(model.Role),
		createdAt,
		updatedAt,
	)
}
