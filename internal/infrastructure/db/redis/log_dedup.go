package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cimco/maintenance-system/internal/api/metrics"
)

// Offline journals can be replayed days after the fact, so dedup keys live
// considerably longer than the typical sync cadence.
const dedupTTL = 7 * 24 * time.Hour

// LogDedupChecker provides idempotency checks for synced log entries,
// backed by Redis.
// Key format: logdedup:<equipment_id>:<action>:<unix_timestamp>
type LogDedupChecker struct {
	client *redis.Client
}

// NewLogDedupChecker creates a LogDedupChecker wrapping the given Redis client.
func NewLogDedupChecker(client *redis.Client) *LogDedupChecker {
	return &LogDedupChecker{client: client}
}

// IsDuplicate reports whether this exact log entry has already been processed.
func (d *LogDedupChecker) IsDuplicate(ctx context.Context, equipmentID, action string, ts int64) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(equipmentID, action, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.LogsDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.LogsDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that this log entry has been processed (expires after dedupTTL).
func (d *LogDedupChecker) Mark(ctx context.Context, equipmentID, action string, ts int64) error {
	return d.client.Set(ctx, d.key(equipmentID, action, ts), "1", dedupTTL).Err()
}

func (d *LogDedupChecker) key(equipmentID, action string, ts int64) string {
	return fmt.Sprintf("logdedup:%s:%s:%d", equipmentID, action, ts)
}
