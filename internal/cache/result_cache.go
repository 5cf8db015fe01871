package cache

import (
	"aimaturity/internal/model"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache stores computed assessment results keyed by input fingerprint.
// Get returns (nil, nil) on a miss.
type ResultCache interface {
	Get(ctx context.Context, key string) (*model.AssessmentResult, error)
	Set(ctx context.Context, key string, result *model.AssessmentResult) error
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a Redis-backed result cache
func NewResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &resultCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *resultCache) key(key string) string {
	return "assessment:result:" + key
}

func (c *resultCache) Get(ctx context.Context, key string) (*model.AssessmentResult, error) {
	data, err := c.client.Get(ctx, c.key(key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.AssessmentResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *resultCache) Set(ctx context.Context, key string, result *model.AssessmentResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}
