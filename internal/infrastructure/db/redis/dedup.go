package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides idempotency checks for report submissions backed by
// Redis. Key format: report-dedup:<lecturer_id>:<idempotency_key>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether a submission with this idempotency key has
// already been accepted for this lecturer.
func (d *DedupChecker) IsDuplicate(ctx context.Context, lecturerID int64, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(lecturerID, key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records an accepted submission (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, lecturerID int64, key string) error {
	return d.client.Set(ctx, d.key(lecturerID, key), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(lecturerID int64, key string) string {
	return fmt.Sprintf("report-dedup:%d:%s", lecturerID, key)
}
