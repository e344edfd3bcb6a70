package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

const locationCacheKey = "location"

// LocationCache keeps the singleton location record in Redis. Both the
// public pages and the checkout deep-link endpoint read the location on
// every hit, so this avoids a database round-trip per request.
type LocationCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewLocationCache(client *redis.Client, ttl time.Duration) *LocationCache {
	return &LocationCache{Client: client, TTL: ttl}
}

func (c *LocationCache) Get(ctx context.Context) (domain.Location, bool) {
	payload, err := c.Client.Get(ctx, locationCacheKey).Bytes()
	if err != nil {
		return domain.Location{}, false
	}
	var loc domain.Location
	if err := json.Unmarshal(payload, &loc); err != nil {
		return domain.Location{}, false
	}
	return loc, true
}

func (c *LocationCache) Set(ctx context.Context, loc domain.Location) error {
	payload, _ := json.Marshal(loc)
	return c.Client.Set(ctx, locationCacheKey, payload, c.TTL).Err()
}

func (c *LocationCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, locationCacheKey).Err()
}

// StatsReader reads the per-day reservation counters the stats consumer
// maintains. An empty map means the counters are cold and the caller should
// fall back to the database.
type StatsReader struct {
	Client *redis.Client
}

func NewStatsReader(client *redis.Client) *StatsReader {
	return &StatsReader{Client: client}
}

func (s *StatsReader) CountsForDate(ctx context.Context, date string) (map[string]int, error) {
	fields, err := s.Client.HGetAll(ctx, events.DailyStatsKey(date)).Result()
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for status, raw := range fields {
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		counts[status] = n
	}
	return counts, nil
}
