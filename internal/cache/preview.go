// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preview.go provides a Valkey-backed cache for assembled preview documents.
// Once a website's parts are stitched into a standalone HTML document, the
// result is stored so repeated preview requests skip the DB fetch and the
// assembly step.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// previewKeyPrefix is the Valkey key prefix for cached preview documents.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long an assembled document stays cached.
	DefaultPreviewTTL = 5 * time.Minute
)

// PreviewCache manages assembled-document caching in Valkey.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a new preview cache backed by the given Valkey client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// Get retrieves the cached document for a website. Returns false on miss.
func (pc *PreviewCache) Get(ctx context.Context, id uuid.UUID) ([]byte, bool) {
	val, err := pc.client.Get(ctx, previewKeyPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "website_id", id, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "website_id", id)
	return val, true
}

// Set stores an assembled document for a website with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, id uuid.UUID, doc []byte) {
	if err := pc.client.Set(ctx, previewKeyPrefix+id.String(), doc, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "website_id", id, "error", err)
	}
}

// Invalidate removes the cached document for a website. Called whenever the
// website's parts change or the record is deleted.
func (pc *PreviewCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := pc.client.Del(ctx, previewKeyPrefix+id.String()).Err(); err != nil {
		slog.Warn("preview cache invalidate error", "website_id", id, "error", err)
	}
	slog.Debug("preview cache invalidated", "website_id", id)
}
