// Package directory holds the per-owner reference records: customers and
// support agents.
package directory

import (
	"fmt"
	"time"
)

type Customer struct {
	id        string
	ownerID   string
	name      string
	email     string
	company   string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(id, ownerID, name, email, company, phone string, now time.Time) (*Customer, error) {
	if err := validateContact(id, ownerID, name, email); err != nil {
		return nil, err
	}
	now = now.UTC().Truncate(time.Millisecond)
	return &Customer{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		email:     email,
		company:   company,
		phone:     phone,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(id, ownerID, name, email, company, phone string, createdAt, updatedAt time.Time) (*Customer, error) {
	if err := validateContact(id, ownerID, name, email); err != nil {
		return nil, err
	}
	return &Customer{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		email:     email,
		company:   company,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Customer) ID() string           { return c.id }
func (c *Customer) OwnerID() string      { return c.ownerID }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Company() string      { return c.company }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func validateContact(id, ownerID, name, email string) error {
	if id == "" {
		return fmt.Errorf("ID is required")
	}
	if ownerID == "" {
		return fmt.Errorf("owner ID is required")
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}
