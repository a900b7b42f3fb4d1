package models

import "github.com/orris-inc/helpdesk/internal/shared/constants"

// TicketModel is the row and blob shape of a ticket. Timestamps are ISO-8601
// UTC strings with millisecond precision so they sort lexicographically.
type TicketModel struct {
	ID                string  `gorm:"primaryKey;size:64" json:"id"`
	UserID            string  `gorm:"primaryKey;size:128" json:"user_id"`
	Title             string  `gorm:"size:200;not null" json:"title"`
	Description       string  `gorm:"type:text;not null" json:"description"`
	Status            string  `gorm:"size:20;not null" json:"status"`
	Priority          string  `gorm:"size:20;not null" json:"priority"`
	Category          string  `gorm:"size:100;not null" json:"category"`
	CustomerName      string  `gorm:"size:200;not null" json:"customer_name"`
	CustomerEmail     string  `gorm:"size:255;not null" json:"customer_email"`
	AssignedAgentID   *string `gorm:"size:64" json:"assigned_agent_id,omitempty"`
	AssignedAgentName *string `gorm:"size:200" json:"assigned_agent_name,omitempty"`
	MessageCount      int     `gorm:"not null;default:0" json:"message_count"`
	CreatedAt         string  `gorm:"size:32;not null" json:"created_at"`
	UpdatedAt         string  `gorm:"size:32;not null" json:"updated_at"`
	ResolvedAt        *string `gorm:"size:32" json:"resolved_at,omitempty"`

	// Note: No foreign key constraints or associations.
	// Messages reference tickets by id only.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketMessageModel struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	UserID      string `gorm:"primaryKey;size:128" json:"user_id"`
	TicketID    string `gorm:"size:64;not null" json:"ticket_id"`
	AuthorName  string `gorm:"size:200;not null" json:"author_name"`
	AuthorEmail string `gorm:"size:255;not null" json:"author_email"`
	Message     string `gorm:"type:text;not null" json:"message"`
	IsInternal  bool   `gorm:"not null;default:false" json:"is_internal"`
	CreatedAt   string `gorm:"size:32;not null" json:"created_at"`
}

func (TicketMessageModel) TableName() string {
	return constants.TableTicketMessages
}

// SampleSeedModel marks an owner whose sample tickets were inserted.
type SampleSeedModel struct {
	UserID   string `gorm:"primaryKey;size:128" json:"user_id"`
	SeededAt string `gorm:"size:32;not null" json:"seeded_at"`
}

func (SampleSeedModel) TableName() string {
	return constants.TableSampleSeeds
}
