package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisEventLog keeps one sorted set per (kind, subject) scored by event time in
// milliseconds. Members older than the retention are trimmed on write and idle
// keys expire.
type RedisEventLog struct {
	client    *redis.Client
	prefix    string
	retention time.Duration
	now       func() time.Time
}

// NewRedisEventLog builds a Redis-backed event log. retention should be at least
// the longest policy window.
func NewRedisEventLog(client *redis.Client, prefix string, retention time.Duration) *RedisEventLog {
	if prefix == "" {
		prefix = "rate"
	}
	return &RedisEventLog{client: client, prefix: prefix, retention: retention, now: time.Now}
}

func (l *RedisEventLog) key(subjectID int64, kind EventKind) string {
	return l.prefix + ":" + string(kind) + ":" + strconv.FormatInt(subjectID, 10)
}

// CountSince counts members scored in [windowStart, now].
func (l *RedisEventLog) CountSince(ctx context.Context, subjectID int64, kind EventKind, windowStart time.Time) (int, error) {
	count, err := l.client.ZCount(ctx, l.key(subjectID, kind),
		strconv.FormatInt(windowStart.UnixMilli(), 10),
		strconv.FormatInt(l.now().UnixMilli(), 10),
	).Result()
	if err != nil {
		return 0, fmt.Errorf("redis zcount: %w", err)
	}
	return int(count), nil
}

// Record adds an event at the given time.
func (l *RedisEventLog) Record(ctx context.Context, subjectID int64, kind EventKind, at time.Time) error {
	key := l.key(subjectID, kind)
	score := float64(at.UnixMilli())

	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: score, Member: uuid.NewString()})
		if l.retention > 0 {
			cutoff := at.Add(-l.retention).UnixMilli()
			pipe.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(cutoff, 10))
			pipe.Expire(ctx, key, l.retention)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis record: %w", err)
	}
	return nil
}
