// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the SiteSmith JSON API.
// Handlers receive their dependencies through the API struct; optional
// dependencies (publisher, preview cache) may be nil.
package handlers

import (
	"context"
	"io"

	"github.com/google/uuid"

	"sitesmith/internal/generator"
	"sitesmith/internal/models"
)

// Generator runs the prompt-to-website pipeline. *generator.Service
// satisfies it.
type Generator interface {
	Submit(ctx context.Context, req generator.SubmitRequest) (*generator.Result, error)
}

// WebsiteStore is the website persistence surface the handlers need.
type WebsiteStore interface {
	FindByID(id uuid.UUID) (*models.Website, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Website, error)
	Update(w *models.Website) error
	SetPreviewURL(id uuid.UUID, url string) error
	Delete(id uuid.UUID) (bool, error)
}

// PromptStore is the prompt lookup surface the handlers need.
type PromptStore interface {
	FindByID(id uuid.UUID) (*models.Prompt, error)
}

// Publisher uploads assembled documents to object storage.
// *storage.Client satisfies it.
type Publisher interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
	ExtractKey(rawURL string) (string, bool)
}

// PreviewCache caches assembled documents between requests.
// *cache.PreviewCache satisfies it.
type PreviewCache interface {
	Get(ctx context.Context, id uuid.UUID) ([]byte, bool)
	Set(ctx context.Context, id uuid.UUID, doc []byte)
	Invalidate(ctx context.Context, id uuid.UUID)
}

// API groups the JSON API handlers and their dependencies.
type API struct {
	generator Generator
	websites  WebsiteStore
	prompts   PromptStore
	publisher Publisher    // nil when S3 is not configured
	previews  PreviewCache // nil when Valkey is not configured
}

// NewAPI creates the API handler group. publisher and previews may be nil.
func NewAPI(gen Generator, websites WebsiteStore, prompts PromptStore, publisher Publisher, previews PreviewCache) *API {
	return &API{
		generator: gen,
		websites:  websites,
		prompts:   prompts,
		publisher: publisher,
		previews:  previews,
	}
}
