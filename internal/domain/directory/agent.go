package directory

import (
	"fmt"
	"time"
)

type AgentRole string

const (
	RoleAgent AgentRole = "agent"
	RoleAdmin AgentRole = "admin"
)

func (r AgentRole) IsValid() bool {
	return r == RoleAgent || r == RoleAdmin
}

func (r AgentRole) String() string {
	return string(r)
}

type Agent struct {
	id        string
	ownerID   string
	name      string
	email     string
	role      AgentRole
	createdAt time.Time
	updatedAt time.Time
}

func NewAgent(id, ownerID, name, email string, role AgentRole, now time.Time) (*Agent, error) {
	if role == "" {
		role = RoleAgent
	}
	if err := validateContact(id, ownerID, name, email); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid agent role: %s", role)
	}
	now = now.UTC().Truncate(time.Millisecond)
	return &Agent{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		email:     email,
		role:      role,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAgent(id, ownerID, name, email string, role AgentRole, createdAt, updatedAt time.Time) (*Agent, error) {
	if err := validateContact(id, ownerID, name, email); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid agent role: %s", role)
	}
	return &Agent{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		email:     email,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Agent) ID() string           { return a.id }
func (a *Agent) OwnerID() string      { return a.ownerID }
func (a *Agent) Name() string         { return a.name }
func (a *Agent) Email() string        { return a.email }
func (a *Agent) Role() AgentRole      { return a.role }
func (a *Agent) CreatedAt() time.Time { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time { return a.updatedAt }
