package usecases

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/orris-inc/helpdesk/internal/application/directory/dto"
	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type CreateAgentCommand struct {
	OwnerID string `json:"user_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Role    string `json:"role" validate:"omitempty,oneof=agent admin"`
}

type CreateAgentUseCase struct {
	agents directory.AgentStore
	logger logger.Interface
}

func NewCreateAgentUseCase(agents directory.AgentStore, logger logger.Interface) *CreateAgentUseCase {
	return &CreateAgentUseCase{agents: agents, logger: logger}
}

func (uc *CreateAgentUseCase) Execute(ctx context.Context, cmd CreateAgentCommand) (*dto.AgentDTO, error) {
	uc.logger.Infow("executing create agent use case", "user_id", cmd.OwnerID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	a, err := directory.NewAgent(uuid.NewString(), cmd.OwnerID, cmd.Name, cmd.Email, directory.AgentRole(cmd.Role), biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.agents.Create(ctx, a); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create agent", "error", err, "user_id", cmd.OwnerID)
		}
		return nil, err
	}

	uc.logger.Infow("agent created successfully", "agent_id", a.ID(), "role", a.Role())
	return dto.ToAgentDTO(a), nil
}

type ListAgentsUseCase struct {
	agents directory.AgentStore
	logger logger.Interface
}

func NewListAgentsUseCase(agents directory.AgentStore, logger logger.Interface) *ListAgentsUseCase {
	return &ListAgentsUseCase{agents: agents, logger: logger}
}

// Execute returns the owner's agents ordered by name.
func (uc *ListAgentsUseCase) Execute(ctx context.Context, ownerID string) ([]*dto.AgentDTO, error) {
	if ownerID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	agents, err := uc.agents.List(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err, "user_id", ownerID)
		return nil, err
	}

	slices.SortStableFunc(agents, func(a, b *directory.Agent) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})

	return dto.ToAgentDTOList(agents), nil
}
