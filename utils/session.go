// File: promarket/utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"promarket/models"
)

// SessionCachePrefix is the prefix used for Redis session cache keys.
const SessionCachePrefix = "viewerSession:"

// SessionCacheTTL is the time-to-live for cached viewer sessions.
const SessionCacheTTL = 10 * time.Minute

// CacheViewerSession stores a validated viewer in Redis keyed by token hash,
// so repeat requests skip JWT parsing.
func CacheViewerSession(client *redis.Client, tokenHash string, viewer models.Viewer) error {
	data, err := json.Marshal(viewer)
	if err != nil {
		return fmt.Errorf("failed to marshal viewer session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, SessionCachePrefix+tokenHash, data, SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache viewer session: %w", err)
	}
	return nil
}

// GetViewerSession retrieves a cached viewer session from Redis.
func GetViewerSession(client *redis.Client, tokenHash string) (*models.Viewer, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, SessionCachePrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var viewer models.Viewer
	if err := json.Unmarshal([]byte(data), &viewer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal viewer session: %w", err)
	}
	return &viewer, nil
}

// DeleteViewerSession removes a cached viewer session from Redis.
func DeleteViewerSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, SessionCachePrefix+tokenHash).Err()
}
