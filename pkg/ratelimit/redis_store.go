package ratelimit

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "rate_limit:"

// RedisStore implements WindowStore on a Redis sorted set per key, scored
// by request timestamp in milliseconds. The whole admission transaction
// runs in one MULTI/EXEC pipeline so concurrent requests from the same key
// observe each other.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the storage key prefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	if client == nil {
		panic("ratelimit.NewRedisStore: client is required")
	}

	s := &RedisStore{client: client, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) RecordAndCount(ctx context.Context, key string, now time.Time, window time.Duration) (int64, time.Time, error) {
	storageKey := s.prefix + key
	nowMillis := now.UnixMilli()
	cutoff := nowMillis - window.Milliseconds()

	// The member carries a random suffix so two requests landing in the
	// same millisecond still count as two entries.
	member := fmt.Sprintf("%d-%d", now.UnixNano(), rand.Int63())

	var (
		countCmd  *redis.IntCmd
		oldestCmd *redis.ZSliceCmd
	)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, storageKey, redis.Z{Score: float64(nowMillis), Member: member})
		pipe.ZRemRangeByScore(ctx, storageKey, "-inf", "("+strconv.FormatInt(cutoff, 10))
		countCmd = pipe.ZCard(ctx, storageKey)
		oldestCmd = pipe.ZRangeWithScores(ctx, storageKey, 0, 0)
		pipe.Expire(ctx, storageKey, window)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	oldest := now
	if entries := oldestCmd.Val(); len(entries) > 0 {
		oldest = time.UnixMilli(int64(entries[0].Score))
	}

	return countCmd.Val(), oldest, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
