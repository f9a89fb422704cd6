// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestIdentity(t *testing.T) {
	t.Run("valid header populates context", func(t *testing.T) {
		want := uuid.New()
		var got *uuid.UUID

		handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = IdentityFromCtx(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/websites", nil)
		req.Header.Set("X-User-ID", want.String())
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		if got == nil || *got != want {
			t.Errorf("identity: got %v, want %s", got, want)
		}
	})

	t.Run("missing header passes through anonymous", func(t *testing.T) {
		var got *uuid.UUID

		handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = IdentityFromCtx(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/websites", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		if got != nil {
			t.Errorf("expected anonymous identity, got %v", got)
		}
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		var called bool
		handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/websites", nil)
		req.Header.Set("X-User-ID", "not-a-uuid")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
		if called {
			t.Error("next handler should not have been called")
		}
	})
}

func TestIdentityFromCtxEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := IdentityFromCtx(req.Context()); id != nil {
		t.Errorf("expected nil identity from bare context, got %v", id)
	}
}
