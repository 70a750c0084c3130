package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkup/linkup-api/internal/api/metrics"
)

const dedupTTL = time.Hour

// DedupChecker suppresses repeat notifications backed by Redis.
// Key format: notif:<recipient>:<actor>:<kind>:<ref>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether the same event was already delivered within the
// dedup window.
func (d *DedupChecker) IsDuplicate(ctx context.Context, recipient, actor, kind, ref string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(recipient, actor, kind, ref)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.NotificationsDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.NotificationsDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records the event as delivered (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, recipient, actor, kind, ref string) error {
	return d.client.Set(ctx, d.key(recipient, actor, kind, ref), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(recipient, actor, kind, ref string) string {
	return fmt.Sprintf("notif:%s:%s:%s:%s", recipient, actor, kind, ref)
}
