// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"

	"sitesmith/internal/generator"
	"sitesmith/internal/middleware"
)

// maxPromptLen bounds the prompt so a single request cannot blow the
// provider's context window (or our DB) with megabytes of text.
const maxPromptLen = 10_000

// generateRequest is the POST /api/generate body.
type generateRequest struct {
	Prompt         string `json:"prompt"`
	OwnerID        string `json:"ownerId"`
	IdempotencyKey string `json:"idempotencyKey"`
}

// generatedWebsiteView is the website subobject of the generate response.
// It mirrors what generation clients expect: content keys without the
// _content suffix and js always present, defaulting to the empty string.
type generatedWebsiteView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	HTML        string `json:"html"`
	CSS         string `json:"css"`
	JS          string `json:"js"`
}

// Generate handles POST /api/generate: one prompt in, one persisted
// website out.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if utf8.RuneCountInString(req.Prompt) > maxPromptLen {
		writeError(w, http.StatusBadRequest, "prompt is too long (max 10,000 characters)")
		return
	}

	// Body ownerId takes precedence over the identity header.
	owner := middleware.IdentityFromCtx(r.Context())
	if req.OwnerID != "" {
		id, err := uuid.Parse(req.OwnerID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid ownerId")
			return
		}
		owner = &id
	}

	result, err := a.generator.Submit(r.Context(), generator.SubmitRequest{
		Prompt:         req.Prompt,
		OwnerID:        owner,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		a.writeSubmitError(w, err)
		return
	}

	resp := map[string]any{
		"success":   true,
		"promptId":  result.PromptID,
		"websiteId": result.Website.ID,
		"website": generatedWebsiteView{
			Title:       result.Website.Title,
			Description: result.Website.Description,
			HTML:        result.Website.HTML,
			CSS:         result.Website.CSS,
			JS:          result.Website.Script(),
		},
		"source": result.Source,
	}
	if result.FallbackReason != "" {
		resp["fallbackReason"] = result.FallbackReason
	}
	if result.Replayed {
		resp["replayed"] = true
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeSubmitError maps pipeline sentinel errors onto HTTP statuses.
func (a *API) writeSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, generator.ErrEmptyPrompt):
		writeError(w, http.StatusBadRequest, "Prompt is required")
	case errors.Is(err, generator.ErrPromptRejected):
		writeError(w, http.StatusBadRequest, "Prompt was rejected by content moderation")
	case errors.Is(err, generator.ErrStoreUnavailable):
		slog.Error("generation store failure", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to persist generation request")
	case errors.Is(err, generator.ErrUpstream):
		slog.Error("generation upstream failure", "error", err)
		writeError(w, http.StatusInternalServerError, "Website generation failed")
	default:
		slog.Error("generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
