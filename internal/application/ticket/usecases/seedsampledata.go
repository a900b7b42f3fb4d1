package usecases

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// SampleProvider builds the fixed sample records for an owner.
type SampleProvider func(ownerID string, now time.Time) ([]*ticket.Ticket, []*ticket.Message, error)

// SeedSampleDataUseCase inserts the sample tickets at most once per owner.
// An owner is seeded only while unmarked and empty; the marker is written
// after seeding and also when an unmarked owner already has tickets, so an
// owner who later deletes every ticket stays empty. Concurrent callers for
// one owner share a single run, and rows that already exist are skipped.
type SeedSampleDataUseCase struct {
	tickets  ticket.TicketStore
	messages ticket.MessageStore
	markers  ticket.SeedMarkerStore
	sample   SampleProvider
	group    singleflight.Group
	logger   logger.Interface
}

func NewSeedSampleDataUseCase(
	tickets ticket.TicketStore,
	messages ticket.MessageStore,
	markers ticket.SeedMarkerStore,
	sample SampleProvider,
	logger logger.Interface,
) *SeedSampleDataUseCase {
	return &SeedSampleDataUseCase{
		tickets:  tickets,
		messages: messages,
		markers:  markers,
		sample:   sample,
		logger:   logger,
	}
}

// Execute reports whether sample data was inserted.
func (uc *SeedSampleDataUseCase) Execute(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, errors.NewValidationError("user ID is required")
	}

	v, err, _ := uc.group.Do(ownerID, func() (any, error) {
		return uc.seed(ctx, ownerID)
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (uc *SeedSampleDataUseCase) seed(ctx context.Context, ownerID string) (bool, error) {
	marked, err := uc.markers.IsSeeded(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to read seed marker", "error", err, "user_id", ownerID)
		return false, err
	}
	if marked {
		return false, nil
	}

	count, err := uc.tickets.Count(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to count tickets before seeding", "error", err, "user_id", ownerID)
		return false, err
	}
	if count > 0 {
		return false, uc.mark(ctx, ownerID)
	}

	tickets, messages, err := uc.sample(ownerID, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to build sample data", "error", err)
		return false, fmt.Errorf("failed to build sample data: %w", err)
	}

	inserted := 0
	for _, t := range tickets {
		if err := uc.tickets.Create(ctx, t); err != nil {
			if errors.IsDuplicateError(err) {
				uc.logger.Debugw("sample ticket already exists", "ticket_id", t.ID(), "user_id", ownerID)
				continue
			}
			uc.logger.Errorw("failed to seed ticket", "error", err, "ticket_id", t.ID(), "user_id", ownerID)
			return false, err
		}
		inserted++
	}

	for _, m := range messages {
		if err := uc.messages.Create(ctx, m); err != nil {
			if errors.IsDuplicateError(err) {
				continue
			}
			uc.logger.Errorw("failed to seed message", "error", err, "message_id", m.ID(), "user_id", ownerID)
			return false, err
		}
	}

	if err := uc.mark(ctx, ownerID); err != nil {
		return false, err
	}

	uc.logger.Infow("sample data seeded", "user_id", ownerID, "tickets", inserted)
	return inserted > 0, nil
}

func (uc *SeedSampleDataUseCase) mark(ctx context.Context, ownerID string) error {
	if err := uc.markers.MarkSeeded(ctx, ownerID); err != nil {
		uc.logger.Errorw("failed to write seed marker", "error", err, "user_id", ownerID)
		return err
	}
	return nil
}
