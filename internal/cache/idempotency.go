// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// idempotency.go records completed generation requests by client-supplied
// key so an identical retry replays the original outcome instead of calling
// the model again.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// idempotencyKeyPrefix is the Valkey key prefix for generation records.
	idempotencyKeyPrefix = "idem:"

	// DefaultIdempotencyTTL is how long a completed request can be replayed.
	DefaultIdempotencyTTL = 24 * time.Hour
)

// GenerationRecord is the stored outcome of a completed generation request.
type GenerationRecord struct {
	PromptID  uuid.UUID `json:"promptId"`
	WebsiteID uuid.UUID `json:"websiteId"`
	Source    string    `json:"source,omitempty"`
}

// IdempotencyCache stores generation records in Valkey keyed by the
// client-supplied idempotency key.
type IdempotencyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyCache creates a new idempotency cache backed by the given
// Valkey client.
func NewIdempotencyCache(client *redis.Client, ttl time.Duration) *IdempotencyCache {
	if ttl == 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyCache{client: client, ttl: ttl}
}

// Lookup returns the stored record for a key, or false when none exists.
func (ic *IdempotencyCache) Lookup(ctx context.Context, key string) (GenerationRecord, bool) {
	val, err := ic.client.Get(ctx, idempotencyKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return GenerationRecord{}, false
	}
	if err != nil {
		slog.Warn("idempotency lookup error", "key", key, "error", err)
		return GenerationRecord{}, false
	}

	var rec GenerationRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		slog.Warn("idempotency record corrupt", "key", key, "error", err)
		return GenerationRecord{}, false
	}
	return rec, true
}

// Store saves the outcome of a completed request under the given key. The
// first writer wins; a concurrent duplicate that lost the race keeps its
// own freshly created rows.
func (ic *IdempotencyCache) Store(ctx context.Context, key string, rec GenerationRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal generation record: %w", err)
	}
	if err := ic.client.SetNX(ctx, idempotencyKeyPrefix+key, data, ic.ttl).Err(); err != nil {
		return fmt.Errorf("store generation record: %w", err)
	}
	return nil
}
