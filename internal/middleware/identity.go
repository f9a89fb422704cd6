// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// identityKey is the context key for the caller's identity.
	identityKey contextKey = "identity"
)

// Identity extracts the caller's user ID from the X-User-ID header and
// stores it in the request context. Anonymous requests pass through with
// no identity; a malformed header is rejected rather than silently
// ignored so callers notice broken clients.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid X-User-ID header", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromCtx extracts the caller's user ID from the request context.
// Returns nil for anonymous requests.
func IdentityFromCtx(ctx context.Context) *uuid.UUID {
	id, ok := ctx.Value(identityKey).(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
