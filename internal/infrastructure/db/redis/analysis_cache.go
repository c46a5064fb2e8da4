package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cimco/maintenance-system/internal/core/ports"
)

const analysisTTL = 24 * time.Hour

// AnalysisCache stores chat-completion results keyed by a hash of the
// request. Photo payloads run to megabytes of base64, so the raw key is
// hashed before it touches Redis.
type AnalysisCache struct {
	client *redis.Client
}

// NewAnalysisCache creates an AnalysisCache wrapping the given Redis client.
func NewAnalysisCache(client *redis.Client) *AnalysisCache {
	return &AnalysisCache{client: client}
}

// Get returns the cached result for the key, reporting whether it was found.
func (c *AnalysisCache) Get(ctx context.Context, key string) (*ports.AnalysisResult, bool, error) {
	raw, err := c.client.Get(ctx, c.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("analysis cache get: %w", err)
	}

	var result ports.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false, fmt.Errorf("analysis cache decode: %w", err)
	}
	return &result, true, nil
}

// Set stores the result under the key (expires after analysisTTL).
func (c *AnalysisCache) Set(ctx context.Context, key string, result *ports.AnalysisResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("analysis cache encode: %w", err)
	}
	return c.client.Set(ctx, c.redisKey(key), raw, analysisTTL).Err()
}

func (c *AnalysisCache) redisKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "analysis:" + hex.EncodeToString(sum[:])
}
