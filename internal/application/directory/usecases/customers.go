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

type CreateCustomerCommand struct {
	OwnerID string `json:"user_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"max=200"`
	Phone   string `json:"phone" validate:"max=50"`
}

type CreateCustomerUseCase struct {
	customers directory.CustomerStore
	logger    logger.Interface
}

func NewCreateCustomerUseCase(customers directory.CustomerStore, logger logger.Interface) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customers: customers, logger: logger}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*dto.CustomerDTO, error) {
	uc.logger.Infow("executing create customer use case", "user_id", cmd.OwnerID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	c, err := directory.NewCustomer(uuid.NewString(), cmd.OwnerID, cmd.Name, cmd.Email, cmd.Company, cmd.Phone, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customers.Create(ctx, c); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("customer email already registered", "user_id", cmd.OwnerID)
		} else {
			uc.logger.Errorw("failed to create customer", "error", err, "user_id", cmd.OwnerID)
		}
		return nil, err
	}

	uc.logger.Infow("customer created successfully", "customer_id", c.ID())
	return dto.ToCustomerDTO(c), nil
}

type ListCustomersUseCase struct {
	customers directory.CustomerStore
	logger    logger.Interface
}

func NewListCustomersUseCase(customers directory.CustomerStore, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{customers: customers, logger: logger}
}

// Execute returns the owner's customers ordered by name.
func (uc *ListCustomersUseCase) Execute(ctx context.Context, ownerID string) ([]*dto.CustomerDTO, error) {
	if ownerID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	customers, err := uc.customers.List(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err, "user_id", ownerID)
		return nil, err
	}

	slices.SortStableFunc(customers, func(a, b *directory.Customer) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})

	return dto.ToCustomerDTOList(customers), nil
}
