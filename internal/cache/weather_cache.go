package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// WeatherCache stores finished weather recommendations keyed by location
// query. Weather changes slowly, so one LLM round trip can serve every
// request for the same place inside the TTL.
type WeatherCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

type CachedRecommendation struct {
	Weather        json.RawMessage `json:"weather"`
	Recommendation string          `json:"recommendation"`
}

func NewWeatherCache(client *redisv9.Client, ttl time.Duration) *WeatherCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &WeatherCache{client: client, ttl: ttl}
}

func (c *WeatherCache) Get(ctx context.Context, query string) (*CachedRecommendation, bool, error) {
	raw, err := c.client.Get(ctx, c.key(query)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get weather failed: %w", err)
	}

	var cached CachedRecommendation
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached weather failed: %w", err)
	}
	return &cached, true, nil
}

func (c *WeatherCache) Set(ctx context.Context, query string, value CachedRecommendation) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal weather cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(query), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set weather failed: %w", err)
	}
	return nil
}

func (c *WeatherCache) key(query string) string {
	return "weather:reco:" + strings.ToLower(strings.TrimSpace(query))
}
