// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator implements the prompt-to-website pipeline: persist the
// prompt, call the active AI provider, parse (or fall back), persist the
// artifact, and mark the prompt completed. Each submission runs its steps
// strictly in order with no shared state between submissions.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"sitesmith/internal/ai"
	"sitesmith/internal/cache"
	"sitesmith/internal/models"
)

// Sentinel errors returned by Submit. Handlers map these to HTTP statuses.
var (
	// ErrEmptyPrompt rejects blank submissions before anything is persisted.
	ErrEmptyPrompt = errors.New("prompt is required")

	// ErrPromptRejected marks prompts flagged by the moderation API.
	ErrPromptRejected = errors.New("prompt rejected by moderation")

	// ErrStoreUnavailable wraps persistence failures at either write step.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUpstream wraps AI provider failures. The prompt row stays in
	// processing when this is returned.
	ErrUpstream = errors.New("upstream generation failed")
)

// Source tags where a Result's artifact came from.
type Source string

const (
	// SourceModel means the artifact was parsed from real model output.
	SourceModel Source = "model"

	// SourceFallback means the placeholder artifact was substituted.
	SourceFallback Source = "fallback"
)

// PromptStore is the prompt persistence surface Submit depends on.
type PromptStore interface {
	Create(p *models.Prompt) (*models.Prompt, error)
	FindByID(id uuid.UUID) (*models.Prompt, error)
	UpdateStatus(id uuid.UUID, status models.PromptStatus) error
}

// WebsiteStore is the website persistence surface Submit depends on.
type WebsiteStore interface {
	Create(w *models.Website) (*models.Website, error)
	FindByID(id uuid.UUID) (*models.Website, error)
}

// ModelClient is the AI surface Submit depends on. *ai.Registry satisfies it.
type ModelClient interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	CheckPrompt(ctx context.Context, prompt string) (*ai.ModerationResult, error)
}

// IdempotencyStore records completed submissions by client-supplied key.
// *cache.IdempotencyCache satisfies it.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (cache.GenerationRecord, bool)
	Store(ctx context.Context, key string, rec cache.GenerationRecord) error
}

// Service runs the generation pipeline.
type Service struct {
	prompts  PromptStore
	websites WebsiteStore
	model    ModelClient
	idem     IdempotencyStore // optional
}

// NewService creates a generation service. idem may be nil, disabling
// idempotency-key replay.
func NewService(prompts PromptStore, websites WebsiteStore, model ModelClient, idem IdempotencyStore) *Service {
	return &Service{
		prompts:  prompts,
		websites: websites,
		model:    model,
		idem:     idem,
	}
}

// SubmitRequest is one generation request.
type SubmitRequest struct {
	// Prompt is the natural-language website description. Required.
	Prompt string

	// OwnerID optionally attributes the prompt and website to a user.
	OwnerID *uuid.UUID

	// IdempotencyKey, when set, makes a retry with the same key replay
	// the original outcome instead of generating again.
	IdempotencyKey string
}

// Result is the outcome of a successful submission.
type Result struct {
	PromptID uuid.UUID
	Website  *models.Website

	// Source reports whether the artifact came from the model or the
	// deterministic placeholder.
	Source Source

	// FallbackReason explains the substitution when Source is fallback.
	FallbackReason string

	// Replayed is true when an idempotency key matched an earlier
	// submission and that outcome was returned unchanged.
	Replayed bool
}

// systemInstruction is the fixed system prompt for website generation. The
// model must answer with a single JSON object holding the website parts.
const systemInstruction = `You are an expert web developer. Generate a complete, modern, responsive website based on the user's prompt.

IMPORTANT: Return your response as a JSON object with this exact structure:
{
  "title": "Website Title",
  "description": "Brief description of the website",
  "html": "Complete HTML content with proper structure",
  "css": "Complete CSS with modern styling, responsive design, and beautiful aesthetics",
  "js": "JavaScript code if needed (optional)"
}

Requirements:
- Use modern HTML5 semantic elements
- Include responsive CSS with mobile-first approach
- Use modern CSS features (flexbox, grid, custom properties)
- Include beautiful typography and color schemes
- Add hover effects and smooth transitions
- Make it production-ready and visually appealing
- Include proper meta tags and accessibility features
- Use a cohesive design system with consistent spacing and colors

Do not include any explanations or additional text outside the JSON response.`

// Submit runs the full pipeline for one generation request.
//
// A provider failure returns ErrUpstream and leaves the prompt row in
// processing with no website row; a later website-write failure likewise
// leaves the prompt in processing. Those intermediate states are the
// recovery signal, there is no rollback.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Result, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	// Replay a completed submission when the key is known.
	if req.IdempotencyKey != "" && s.idem != nil {
		if res, ok := s.replay(ctx, req.IdempotencyKey); ok {
			return res, nil
		}
	}

	if err := s.moderate(ctx, req.Prompt); err != nil {
		return nil, err
	}

	prompt, err := s.prompts.Create(&models.Prompt{
		OwnerID: req.OwnerID,
		Text:    req.Prompt,
		Status:  models.PromptStatusProcessing,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create prompt: %v", ErrStoreUnavailable, err)
	}

	raw, err := s.model.Generate(ctx, systemInstruction, req.Prompt)
	if err != nil {
		slog.Error("generation failed", "prompt_id", prompt.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	artifact, parseErr := parseArtifact(raw)
	source := SourceModel
	fallbackReason := ""
	if parseErr != nil {
		slog.Warn("model output unusable, substituting placeholder",
			"prompt_id", prompt.ID, "error", parseErr)
		artifact = fallbackArtifact(req.Prompt)
		source = SourceFallback
		fallbackReason = parseErr.Error()
	}

	js := artifact.JS
	website, err := s.websites.Create(&models.Website{
		PromptID:    prompt.ID,
		OwnerID:     req.OwnerID,
		Title:       artifact.Title,
		Description: artifact.Description,
		HTML:        artifact.HTML,
		CSS:         artifact.CSS,
		JS:          &js,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create website: %v", ErrStoreUnavailable, err)
	}

	// Best effort; the website row is already the source of truth.
	if err := s.prompts.UpdateStatus(prompt.ID, models.PromptStatusCompleted); err != nil {
		slog.Warn("prompt status update failed", "prompt_id", prompt.ID, "error", err)
	}

	if req.IdempotencyKey != "" && s.idem != nil {
		rec := cache.GenerationRecord{
			PromptID:  prompt.ID,
			WebsiteID: website.ID,
			Source:    string(source),
		}
		if err := s.idem.Store(ctx, req.IdempotencyKey, rec); err != nil {
			slog.Warn("idempotency record not stored",
				"key", req.IdempotencyKey, "error", err)
		}
	}

	slog.Info("website generated",
		"prompt_id", prompt.ID,
		"website_id", website.ID,
		"source", source,
	)

	return &Result{
		PromptID:       prompt.ID,
		Website:        website,
		Source:         source,
		FallbackReason: fallbackReason,
	}, nil
}

// replay returns the stored outcome for an idempotency key, when both the
// record and the website row still exist. A stale record (website deleted
// since) falls through to a fresh generation.
func (s *Service) replay(ctx context.Context, key string) (*Result, bool) {
	rec, ok := s.idem.Lookup(ctx, key)
	if !ok {
		return nil, false
	}

	website, err := s.websites.FindByID(rec.WebsiteID)
	if err != nil || website == nil {
		return nil, false
	}

	source := Source(rec.Source)
	if source == "" {
		source = SourceModel
	}

	slog.Info("submission replayed", "key", key, "website_id", website.ID)
	return &Result{
		PromptID: rec.PromptID,
		Website:  website,
		Source:   source,
		Replayed: true,
	}, true
}

// moderate runs the prompt through the moderation API. A flagged prompt is
// rejected; a moderation transport error degrades to allowing the prompt,
// since every provider keeps its own safety filters.
func (s *Service) moderate(ctx context.Context, prompt string) error {
	result, err := s.model.CheckPrompt(ctx, prompt)
	if err != nil {
		slog.Warn("moderation check failed, continuing", "error", err)
		return nil
	}
	if result != nil && !result.Safe {
		slog.Info("prompt rejected by moderation", "categories", result.Categories)
		return fmt.Errorf("%w: %s", ErrPromptRejected, strings.Join(result.Categories, ", "))
	}
	return nil
}
