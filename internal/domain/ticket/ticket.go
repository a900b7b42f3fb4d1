// Package ticket holds the help-desk ticket aggregate, its messages, the
// shared filter predicate and the store contracts both backends implement.
package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 10000
)

// AgentRef identifies the agent a ticket is assigned to. ID may be empty when
// only a display name is known.
type AgentRef struct {
	ID   string
	Name string
}

type Ticket struct {
	id            string
	ownerID       string
	title         string
	description   string
	status        vo.TicketStatus
	priority      vo.Priority
	category      string
	customerName  string
	customerEmail string
	assignedAgent *AgentRef
	messageCount  int
	createdAt     time.Time
	updatedAt     time.Time
	resolvedAt    *time.Time
}

// Changes is a partial update. Nil fields are left untouched.
type Changes struct {
	Title         *string
	Description   *string
	Status        *vo.TicketStatus
	Priority      *vo.Priority
	Category      *string
	CustomerName  *string
	CustomerEmail *string
	AssignedAgent *AgentRef
	UnassignAgent bool
}

// stamp normalizes t to the precision timestamps are persisted with.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func NewTicket(
	id string,
	ownerID string,
	title string,
	description string,
	priority vo.Priority,
	category string,
	customerName string,
	customerEmail string,
	assignedAgent *AgentRef,
	now time.Time,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if err := validateText(title, description); err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now = stamp(now)
	return &Ticket{
		id:            id,
		ownerID:       ownerID,
		title:         title,
		description:   description,
		status:        vo.StatusOpen,
		priority:      priority,
		category:      category,
		customerName:  customerName,
		customerEmail: customerEmail,
		assignedAgent: copyAgent(assignedAgent),
		messageCount:  0,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTicket(
	id string,
	ownerID string,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	category string,
	customerName string,
	customerEmail string,
	assignedAgent *AgentRef,
	messageCount int,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if messageCount < 0 {
		messageCount = 0
	}

	return &Ticket{
		id:            id,
		ownerID:       ownerID,
		title:         title,
		description:   description,
		status:        status,
		priority:      priority,
		category:      category,
		customerName:  customerName,
		customerEmail: customerEmail,
		assignedAgent: copyAgent(assignedAgent),
		messageCount:  messageCount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		resolvedAt:    resolvedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) OwnerID() string {
	return t.ownerID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) CustomerName() string {
	return t.customerName
}

func (t *Ticket) CustomerEmail() string {
	return t.customerEmail
}

// AssignedAgent returns a copy of the assignee, or nil when unassigned.
func (t *Ticket) AssignedAgent() *AgentRef {
	return copyAgent(t.assignedAgent)
}

func (t *Ticket) MessageCount() int {
	return t.messageCount
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// ResolvedAt is set when the ticket enters resolved and cleared when it leaves.
func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

// Update applies a partial change set and always touches updated_at, even
// when no field actually changed. Status transitions are unrestricted.
func (t *Ticket) Update(c Changes, now time.Time) error {
	title, description := t.title, t.description
	if c.Title != nil {
		title = *c.Title
	}
	if c.Description != nil {
		description = *c.Description
	}
	if err := validateText(title, description); err != nil {
		return err
	}
	if c.Status != nil && !c.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", *c.Status)
	}
	if c.Priority != nil && !c.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *c.Priority)
	}

	t.title = title
	t.description = description
	if c.Priority != nil {
		t.priority = *c.Priority
	}
	if c.Category != nil {
		t.category = *c.Category
	}
	if c.CustomerName != nil {
		t.customerName = *c.CustomerName
	}
	if c.CustomerEmail != nil {
		t.customerEmail = *c.CustomerEmail
	}
	if c.UnassignAgent {
		t.assignedAgent = nil
	} else if c.AssignedAgent != nil {
		t.assignedAgent = copyAgent(c.AssignedAgent)
	}

	t.touch(now)
	if c.Status != nil {
		t.changeStatus(*c.Status)
	}
	return nil
}

// RecordMessage stores the current message count and touches updated_at.
func (t *Ticket) RecordMessage(count int, now time.Time) {
	t.SetMessageCount(count)
	t.touch(now)
}

// SetMessageCount replaces the cached message count with a value computed
// from the message collection.
func (t *Ticket) SetMessageCount(count int) {
	if count < 0 {
		count = 0
	}
	t.messageCount = count
}

func (t *Ticket) changeStatus(newStatus vo.TicketStatus) {
	if newStatus.IsResolved() && !t.status.IsResolved() {
		resolved := t.updatedAt
		t.resolvedAt = &resolved
	}
	if !newStatus.IsResolved() {
		t.resolvedAt = nil
	}
	t.status = newStatus
}

// touch moves updated_at to now, or one tick past the previous value if the
// clock has not advanced at persisted precision.
func (t *Ticket) touch(now time.Time) {
	now = stamp(now)
	if !now.After(t.updatedAt) {
		now = t.updatedAt.Add(time.Millisecond)
	}
	t.updatedAt = now
}

// validateText limits are in characters, not bytes.
func validateText(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return nil
}

func copyAgent(a *AgentRef) *AgentRef {
	if a == nil || (a.ID == "" && a.Name == "") {
		return nil
	}
	cp := *a
	return &cp
}
