package dto

import (
	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/mapper"
)

type CustomerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type AgentDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ToCustomerDTO(c *directory.Customer) *CustomerDTO {
	return &CustomerDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Company:   c.Company(),
		Phone:     c.Phone(),
		UserID:    c.OwnerID(),
		CreatedAt: biztime.FormatTimestamp(c.CreatedAt()),
		UpdatedAt: biztime.FormatTimestamp(c.UpdatedAt()),
	}
}

func ToAgentDTO(a *directory.Agent) *AgentDTO {
	return &AgentDTO{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email(),
		Role:      a.Role().String(),
		UserID:    a.OwnerID(),
		CreatedAt: biztime.FormatTimestamp(a.CreatedAt()),
		UpdatedAt: biztime.FormatTimestamp(a.UpdatedAt()),
	}
}

func ToCustomerDTOList(customers []*directory.Customer) []*CustomerDTO {
	if len(customers) == 0 {
		return []*CustomerDTO{}
	}
	return mapper.MapSlice(customers, ToCustomerDTO)
}

func ToAgentDTOList(agents []*directory.Agent) []*AgentDTO {
	if len(agents) == 0 {
		return []*AgentDTO{}
	}
	return mapper.MapSlice(agents, ToAgentDTO)
}
