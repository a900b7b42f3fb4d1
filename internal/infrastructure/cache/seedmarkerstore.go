package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

const collectionSeeded = "seeded"

// SeedMarkerStore flags seeded owners with a plain key at
// "<prefix>_seeded_<ownerID>" holding the seed time.
type SeedMarkerStore struct {
	client *redis.Client
	prefix string
}

func NewSeedMarkerStore(client *redis.Client, prefix string) *SeedMarkerStore {
	return &SeedMarkerStore{client: client, prefix: prefix}
}

func (s *SeedMarkerStore) key(ownerID string) string {
	return blobKey(s.prefix, collectionSeeded, ownerID)
}

func (s *SeedMarkerStore) IsSeeded(ctx context.Context, ownerID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(ownerID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to read seed marker: %w", err)
	}
	return n > 0, nil
}

// MarkSeeded keeps the first seed time when the marker already exists.
func (s *SeedMarkerStore) MarkSeeded(ctx context.Context, ownerID string) error {
	stamp := biztime.FormatTimestamp(biztime.NowUTC())
	if err := s.client.SetNX(ctx, s.key(ownerID), stamp, 0).Err(); err != nil {
		return fmt.Errorf("failed to write seed marker: %w", err)
	}
	return nil
}
