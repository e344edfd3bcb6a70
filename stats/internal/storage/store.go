package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
)

// RedisCounters keeps one hash per date, field per status. Counters expire
// after TTL so the set does not grow forever; the server falls back to the
// database for dates that have aged out.
type RedisCounters struct {
	Client *redis.Client
	TTL    time.Duration

	ctx context.Context
}

func NewRedisCounters(client *redis.Client, ttl time.Duration) *RedisCounters {
	return &RedisCounters{Client: client, TTL: ttl, ctx: context.Background()}
}

func (s *RedisCounters) RecordCreated(date, status string) error {
	key := events.DailyStatsKey(date)
	if err := s.Client.HIncrBy(s.ctx, key, status, 1).Err(); err != nil {
		return err
	}
	return s.Client.Expire(s.ctx, key, s.TTL).Err()
}

// RecordStatusChange moves one reservation between status buckets. The
// decrement is skipped when the previous status is unknown.
func (s *RedisCounters) RecordStatusChange(date, status, prevStatus string) error {
	key := events.DailyStatsKey(date)
	if err := s.Client.HIncrBy(s.ctx, key, status, 1).Err(); err != nil {
		return err
	}
	if prevStatus != "" {
		if err := s.Client.HIncrBy(s.ctx, key, prevStatus, -1).Err(); err != nil {
			return err
		}
	}
	return s.Client.Expire(s.ctx, key, s.TTL).Err()
}
