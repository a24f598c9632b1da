package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// AppliedTxCache implements ports.AppliedTxCache using Redis. The marker is
// the fast path for deduplicating at-least-once delivery; the durable
// fallback is the history-row existence check in the ledger service.
type AppliedTxCache struct {
	client *goredis.Client
	prefix string
}

// NewAppliedTxCache creates a new Redis-backed applied-transaction cache.
func NewAppliedTxCache(client *goredis.Client) *AppliedTxCache {
	return &AppliedTxCache{
		client: client,
		prefix: "applied_tx:",
	}
}

// IsApplied reports whether the transaction's ledger effects were recorded
// as applied. A missing key means "unknown", not "unapplied".
func (c *AppliedTxCache) IsApplied(ctx context.Context, txID string) (bool, error) {
	err := c.client.Get(ctx, c.prefix+txID).Err()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis applied-tx get: %w", err)
	}
	return true, nil
}

// MarkApplied records the transaction as applied with a TTL.
func (c *AppliedTxCache) MarkApplied(ctx context.Context, txID string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+txID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis applied-tx set: %w", err)
	}
	return nil
}

// Clear drops the marker so a voided-then-reconfirmed transaction can be
// applied again.
func (c *AppliedTxCache) Clear(ctx context.Context, txID string) error {
	if err := c.client.Del(ctx, c.prefix+txID).Err(); err != nil {
		return fmt.Errorf("redis applied-tx del: %w", err)
	}
	return nil
}
