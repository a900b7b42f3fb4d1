package cache

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const (
	collectionCustomers = "customers"
	collectionAgents    = "agents"
)

// CustomerBlobStore keeps each owner's customers at "<prefix>_customers_<ownerID>".
type CustomerBlobStore struct {
	blob   jsonBlob[*models.CustomerModel]
	prefix string
	mapper mappers.DirectoryMapper
	logger logger.Interface
}

func NewCustomerBlobStore(client *redis.Client, prefix string, log logger.Interface) *CustomerBlobStore {
	log = log.With("component", "cache.customer_blob")
	return &CustomerBlobStore{
		blob:   jsonBlob[*models.CustomerModel]{client: client, logger: log},
		prefix: prefix,
		mapper: mappers.NewDirectoryMapper(),
		logger: log,
	}
}

func (s *CustomerBlobStore) Create(ctx context.Context, c *directory.Customer) error {
	model := s.mapper.CustomerToModel(c)
	key := blobKey(s.prefix, collectionCustomers, c.OwnerID())
	return s.blob.mutate(ctx, key, func(records []*models.CustomerModel) ([]*models.CustomerModel, error) {
		for _, r := range records {
			if r != nil && strings.EqualFold(r.Email, model.Email) {
				return nil, errors.NewConflictError("customer with this email already exists", model.Email)
			}
		}
		return append(records, model), nil
	})
}

func (s *CustomerBlobStore) List(ctx context.Context, ownerID string) ([]*directory.Customer, error) {
	records, err := s.blob.load(ctx, s.blob.client, blobKey(s.prefix, collectionCustomers, ownerID))
	if err != nil {
		return nil, err
	}

	customers := make([]*directory.Customer, 0, len(records))
	for _, record := range records {
		if record == nil || record.UserID != ownerID {
			continue
		}
		c, err := s.mapper.CustomerToDomain(record)
		if err != nil {
			s.logger.Warnw("skipping unreadable customer record", "owner_id", ownerID, "error", err)
			continue
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// AgentBlobStore keeps each owner's agents at "<prefix>_agents_<ownerID>".
type AgentBlobStore struct {
	blob   jsonBlob[*models.AgentModel]
	prefix string
	mapper mappers.DirectoryMapper
	logger logger.Interface
}

func NewAgentBlobStore(client *redis.Client, prefix string, log logger.Interface) *AgentBlobStore {
	log = log.With("component", "cache.agent_blob")
	return &AgentBlobStore{
		blob:   jsonBlob[*models.AgentModel]{client: client, logger: log},
		prefix: prefix,
		mapper: mappers.NewDirectoryMapper(),
		logger: log,
	}
}

func (s *AgentBlobStore) Create(ctx context.Context, a *directory.Agent) error {
	model := s.mapper.AgentToModel(a)
	key := blobKey(s.prefix, collectionAgents, a.OwnerID())
	return s.blob.mutate(ctx, key, func(records []*models.AgentModel) ([]*models.AgentModel, error) {
		for _, r := range records {
			if r != nil && strings.EqualFold(r.Email, model.Email) {
				return nil, errors.NewConflictError("agent with this email already exists", model.Email)
			}
		}
		return append(records, model), nil
	})
}

func (s *AgentBlobStore) List(ctx context.Context, ownerID string) ([]*directory.Agent, error) {
	records, err := s.blob.load(ctx, s.blob.client, blobKey(s.prefix, collectionAgents, ownerID))
	if err != nil {
		return nil, err
	}

	agents := make([]*directory.Agent, 0, len(records))
	for _, record := range records {
		if record == nil || record.UserID != ownerID {
			continue
		}
		a, err := s.mapper.AgentToDomain(record)
		if err != nil {
			s.logger.Warnw("skipping unreadable agent record", "owner_id", ownerID, "error", err)
			continue
		}
		agents = append(agents, a)
	}
	return agents, nil
}
