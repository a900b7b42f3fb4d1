package usecases

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/directory"
	"github.com/orris-inc/helpdesk/internal/infrastructure/cache"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database/dbtest"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func forEachBackend(t *testing.T, fn func(t *testing.T, customers directory.CustomerStore, agents directory.AgentStore)) {
	t.Run("remote", func(t *testing.T) {
		gdb := dbtest.NewSQLite(t)
		fn(t, repository.NewCustomerRepository(gdb), repository.NewAgentRepository(gdb))
	})

	t.Run("local", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		log := logger.NewNopLogger()
		fn(t, cache.NewCustomerBlobStore(client, "helpdesk", log), cache.NewAgentBlobStore(client, "helpdesk", log))
	})
}

func TestCustomerUseCases(t *testing.T) {
	forEachBackend(t, func(t *testing.T, customers directory.CustomerStore, _ directory.AgentStore) {
		ctx := context.Background()
		log := logger.NewNopLogger()
		create := NewCreateCustomerUseCase(customers, log)
		list := NewListCustomersUseCase(customers, log)

		_, err := create.Execute(ctx, CreateCustomerCommand{OwnerID: "owner-a", Name: "zoe", Email: "zoe@example.com"})
		require.NoError(t, err)
		created, err := create.Execute(ctx, CreateCustomerCommand{OwnerID: "owner-a", Name: "Adam", Email: "adam@example.com", Company: "Acme"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Acme", created.Company)

		_, err = create.Execute(ctx, CreateCustomerCommand{OwnerID: "owner-a", Name: "Adam 2", Email: "adam@example.com"})
		assert.True(t, errors.IsConflictError(err))

		_, err = create.Execute(ctx, CreateCustomerCommand{OwnerID: "owner-b", Name: "Adam", Email: "adam@example.com"})
		require.NoError(t, err)

		_, err = create.Execute(ctx, CreateCustomerCommand{OwnerID: "owner-a", Name: "Bad", Email: "bad"})
		assert.True(t, errors.IsValidationError(err))

		result, err := list.Execute(ctx, "owner-a")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Adam", result[0].Name)
		assert.Equal(t, "zoe", result[1].Name)
	})
}

func TestAgentUseCases(t *testing.T) {
	forEachBackend(t, func(t *testing.T, _ directory.CustomerStore, agents directory.AgentStore) {
		ctx := context.Background()
		log := logger.NewNopLogger()
		create := NewCreateAgentUseCase(agents, log)
		list := NewListAgentsUseCase(agents, log)

		created, err := create.Execute(ctx, CreateAgentCommand{OwnerID: "owner-a", Name: "Sarah Wilson", Email: "sarah@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "agent", created.Role)

		_, err = create.Execute(ctx, CreateAgentCommand{OwnerID: "owner-a", Name: "Mike Johnson", Email: "mike@example.com", Role: "admin"})
		require.NoError(t, err)

		_, err = create.Execute(ctx, CreateAgentCommand{OwnerID: "owner-a", Name: "Root", Email: "root@example.com", Role: "owner"})
		assert.True(t, errors.IsValidationError(err))

		result, err := list.Execute(ctx, "owner-a")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Mike Johnson", result[0].Name)
		assert.Equal(t, "admin", result[0].Role)

		empty, err := list.Execute(ctx, "owner-b")
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})
}
