// Package metrics records Prometheus metrics for store operations.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

var (
	// Store operations partitioned by backend, operation and outcome
	storeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helpdesk_store_operations_total",
			Help: "Total number of ticket store operations",
		},
		[]string{"backend", "operation", "outcome"},
	)

	storeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "helpdesk_store_operation_duration_seconds",
			Help:    "Ticket store operation latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.IsNotFoundError(err):
		return OutcomeNotFound
	case errors.IsConflictError(err):
		return OutcomeConflict
	default:
		return OutcomeError
	}
}

// Observe records one store operation.
func Observe(backend, operation string, start time.Time, err error) {
	storeOperationsTotal.WithLabelValues(backend, operation, outcome(err)).Inc()
	storeOperationDuration.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}

// TicketStore decorates a ticket store with operation metrics.
type TicketStore struct {
	inner   ticket.TicketStore
	backend string
}

func NewTicketStore(inner ticket.TicketStore, backend string) *TicketStore {
	return &TicketStore{inner: inner, backend: backend}
}

func (s *TicketStore) Create(ctx context.Context, t *ticket.Ticket) (err error) {
	defer func(start time.Time) { Observe(s.backend, "create", start, err) }(time.Now())
	return s.inner.Create(ctx, t)
}

func (s *TicketStore) List(ctx context.Context, ownerID string, filter ticket.Filter) (list []*ticket.Ticket, err error) {
	defer func(start time.Time) { Observe(s.backend, "list", start, err) }(time.Now())
	return s.inner.List(ctx, ownerID, filter)
}

func (s *TicketStore) Get(ctx context.Context, ownerID, id string) (t *ticket.Ticket, err error) {
	defer func(start time.Time) { Observe(s.backend, "get", start, err) }(time.Now())
	return s.inner.Get(ctx, ownerID, id)
}

func (s *TicketStore) Update(ctx context.Context, t *ticket.Ticket) (err error) {
	defer func(start time.Time) { Observe(s.backend, "update", start, err) }(time.Now())
	return s.inner.Update(ctx, t)
}

func (s *TicketStore) Delete(ctx context.Context, ownerID, id string) (err error) {
	defer func(start time.Time) { Observe(s.backend, "delete", start, err) }(time.Now())
	return s.inner.Delete(ctx, ownerID, id)
}

func (s *TicketStore) Count(ctx context.Context, ownerID string) (n int64, err error) {
	defer func(start time.Time) { Observe(s.backend, "count", start, err) }(time.Now())
	return s.inner.Count(ctx, ownerID)
}

// MessageStore decorates a message store with operation metrics.
type MessageStore struct {
	inner   ticket.MessageStore
	backend string
}

func NewMessageStore(inner ticket.MessageStore, backend string) *MessageStore {
	return &MessageStore{inner: inner, backend: backend}
}

func (s *MessageStore) Create(ctx context.Context, m *ticket.Message) (err error) {
	defer func(start time.Time) { Observe(s.backend, "message_create", start, err) }(time.Now())
	return s.inner.Create(ctx, m)
}

func (s *MessageStore) ListByTicket(ctx context.Context, ownerID, ticketID string) (list []*ticket.Message, err error) {
	defer func(start time.Time) { Observe(s.backend, "message_list", start, err) }(time.Now())
	return s.inner.ListByTicket(ctx, ownerID, ticketID)
}

func (s *MessageStore) CountByTickets(ctx context.Context, ownerID string, ticketIDs []string) (counts map[string]int, err error) {
	defer func(start time.Time) { Observe(s.backend, "message_count", start, err) }(time.Now())
	return s.inner.CountByTickets(ctx, ownerID, ticketIDs)
}
