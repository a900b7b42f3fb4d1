package directory

import "context"

// CustomerStore persists customers scoped by owner. Duplicate emails within
// one owner surface as a conflict error.
type CustomerStore interface {
	Create(ctx context.Context, c *Customer) error
	List(ctx context.Context, ownerID string) ([]*Customer, error)
}

// AgentStore persists agents scoped by owner.
type AgentStore interface {
	Create(ctx context.Context, a *Agent) error
	List(ctx context.Context, ownerID string) ([]*Agent, error)
}
