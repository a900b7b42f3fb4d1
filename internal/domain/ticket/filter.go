package ticket

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
)

// FilterAll as a status or priority value means "no constraint".
const FilterAll = "all"

// Filter narrows a ticket collection. Status and priority are exact matches
// unless empty or FilterAll; Search is a case-insensitive substring tested
// against title, customer name and id. The three predicates are AND'd.
type Filter struct {
	Status   string
	Priority string
	Search   string
}

// StatusConstraint returns the status to match, if any.
func (f Filter) StatusConstraint() (vo.TicketStatus, bool) {
	if f.Status == "" || f.Status == FilterAll {
		return "", false
	}
	return vo.TicketStatus(f.Status), true
}

// PriorityConstraint returns the priority to match, if any.
func (f Filter) PriorityConstraint() (vo.Priority, bool) {
	if f.Priority == "" || f.Priority == FilterAll {
		return "", false
	}
	return vo.Priority(f.Priority), true
}

// SearchTerm returns the trimmed search text, empty when none was given.
func (f Filter) SearchTerm() string {
	return strings.TrimSpace(f.Search)
}

// IsEmpty reports whether the filter places no constraint at all.
func (f Filter) IsEmpty() bool {
	_, hasStatus := f.StatusConstraint()
	_, hasPriority := f.PriorityConstraint()
	return !hasStatus && !hasPriority && f.SearchTerm() == ""
}

// Apply returns the tickets matching f, preserving input order.
func (f Filter) Apply(tickets []*Ticket) []*Ticket {
	m := f.matcher()
	result := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if m.matches(t) {
			result = append(result, t)
		}
	}
	return result
}

// Matches reports whether a single ticket satisfies f.
func (f Filter) Matches(t *Ticket) bool {
	return f.matcher().matches(t)
}

type matcher struct {
	status      vo.TicketStatus
	hasStatus   bool
	priority    vo.Priority
	hasPriority bool
	term        string
	fold        cases.Caser
}

// matcher builds a per-call predicate. A Caser is stateful and is not
// shared between goroutines.
func (f Filter) matcher() *matcher {
	m := &matcher{fold: cases.Fold()}
	m.status, m.hasStatus = f.StatusConstraint()
	m.priority, m.hasPriority = f.PriorityConstraint()
	if term := f.SearchTerm(); term != "" {
		m.term = m.fold.String(term)
	}
	return m
}

func (m *matcher) matches(t *Ticket) bool {
	if t == nil {
		return false
	}
	if m.hasStatus && t.Status() != m.status {
		return false
	}
	if m.hasPriority && t.Priority() != m.priority {
		return false
	}
	if m.term == "" {
		return true
	}
	for _, field := range []string{t.Title(), t.CustomerName(), t.ID()} {
		if strings.Contains(m.fold.String(field), m.term) {
			return true
		}
	}
	return false
}

// SortNewestFirst orders tickets by created_at descending. Ties keep their
// input order.
func SortNewestFirst(tickets []*Ticket) {
	slices.SortStableFunc(tickets, func(a, b *Ticket) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
}

// SortMessagesOldestFirst orders messages by created_at ascending. Ties keep
// their input order.
func SortMessagesOldestFirst(messages []*Message) {
	slices.SortStableFunc(messages, func(a, b *Message) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
}
