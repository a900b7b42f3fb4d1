package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// blobWatchRetries bounds optimistic retries when a watched blob changes
// between read and write.
const blobWatchRetries = 5

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// jsonBlob stores a whole collection for one owner as a single JSON array
// under one key. Every write rewrites the full array.
type jsonBlob[T any] struct {
	client *redis.Client
	logger logger.Interface
}

// load reads the collection at key. A missing key yields an empty slice; a
// blob that does not decode is logged and also treated as empty.
func (b *jsonBlob[T]) load(ctx context.Context, getter stringGetter, key string) ([]T, error) {
	data, err := getter.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		b.logger.Warnw("discarding unreadable blob", "key", key, "error", err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// mutate runs a read-modify-write of the collection at key under WATCH so a
// concurrent writer forces a retry instead of a lost update. Errors returned
// by fn abort the write and are passed through unchanged.
func (b *jsonBlob[T]) mutate(ctx context.Context, key string, fn func([]T) ([]T, error)) error {
	txf := func(tx *redis.Tx) error {
		records, err := b.load(ctx, tx, key)
		if err != nil {
			return err
		}

		next, err := fn(records)
		if err != nil {
			return err
		}

		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < blobWatchRetries; i++ {
		err := b.client.Watch(ctx, txf, key)
		if stderrors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("failed to write %s: too many concurrent updates", key)
}

// blobKey builds "<prefix>_<collection>_<ownerID>".
func blobKey(prefix, collection, ownerID string) string {
	return prefix + "_" + collection + "_" + ownerID
}
