// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sitesmith/internal/middleware"
	"sitesmith/internal/models"
	"sitesmith/internal/render"
	"sitesmith/internal/slug"
)

// websiteID parses the {id} route parameter. Writes a 400 and returns
// false on malformed input.
func websiteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid website id")
		return uuid.Nil, false
	}
	return id, true
}

// findWebsite loads a website or writes the appropriate error response.
func (a *API) findWebsite(w http.ResponseWriter, id uuid.UUID) (*models.Website, bool) {
	site, err := a.websites.FindByID(id)
	if err != nil {
		slog.Error("website lookup failed", "website_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load website")
		return nil, false
	}
	if site == nil {
		writeError(w, http.StatusNotFound, "Website not found")
		return nil, false
	}
	return site, true
}

// ListWebsites handles GET /api/websites?owner_id=. When the query
// parameter is absent the identity header is used instead.
func (a *API) ListWebsites(w http.ResponseWriter, r *http.Request) {
	var owner *uuid.UUID
	if raw := r.URL.Query().Get("owner_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid owner_id")
			return
		}
		owner = &id
	} else {
		owner = middleware.IdentityFromCtx(r.Context())
	}

	if owner == nil {
		writeError(w, http.StatusBadRequest, "owner_id is required")
		return
	}

	list, err := a.websites.ListByOwner(*owner)
	if err != nil {
		slog.Error("website list failed", "owner_id", owner, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list websites")
		return
	}
	if list == nil {
		list = []models.Website{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"websites": list,
	})
}

// GetWebsite handles GET /api/websites/{id}.
func (a *API) GetWebsite(w http.ResponseWriter, r *http.Request) {
	id, ok := websiteID(w, r)
	if !ok {
		return
	}
	site, ok := a.findWebsite(w, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"website": site,
	})
}

// UpdateWebsite handles PATCH /api/websites/{id}: any subset of title,
// description, html_content, css_content, js_content and is_public.
// Omitted fields are left unchanged.
func (a *API) UpdateWebsite(w http.ResponseWriter, r *http.Request) {
	id, ok := websiteID(w, r)
	if !ok {
		return
	}

	var update models.WebsiteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	site, ok := a.findWebsite(w, id)
	if !ok {
		return
	}

	if update.Apply(site) {
		if err := a.websites.Update(site); err != nil {
			slog.Error("website update failed", "website_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update website")
			return
		}
		if a.previews != nil {
			a.previews.Invalidate(r.Context(), id)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"website": site,
	})
}

// DeleteWebsite handles DELETE /api/websites/{id}. The originating prompt
// record is retained; a previously published document is removed from
// object storage best-effort.
func (a *API) DeleteWebsite(w http.ResponseWriter, r *http.Request) {
	id, ok := websiteID(w, r)
	if !ok {
		return
	}

	site, err := a.websites.FindByID(id)
	if err != nil {
		slog.Error("website lookup failed", "website_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load website")
		return
	}
	if site == nil {
		writeError(w, http.StatusNotFound, "Website not found")
		return
	}

	removed, err := a.websites.Delete(id)
	if err != nil {
		slog.Error("website delete failed", "website_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete website")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Website not found")
		return
	}

	if a.previews != nil {
		a.previews.Invalidate(r.Context(), id)
	}
	if a.publisher != nil && site.PreviewURL != nil {
		if key, ok := a.publisher.ExtractKey(*site.PreviewURL); ok {
			if err := a.publisher.Delete(r.Context(), key); err != nil {
				slog.Warn("published document not removed", "key", key, "error", err)
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// assemble builds the standalone document for a website, consulting the
// preview cache when available.
func (a *API) assemble(r *http.Request, site *models.Website) []byte {
	if a.previews != nil {
		if doc, ok := a.previews.Get(r.Context(), site.ID); ok {
			return doc
		}
	}

	doc := render.Document(site.Title, site.HTML, site.CSS, site.Script())

	if a.previews != nil {
		a.previews.Set(r.Context(), site.ID, doc)
	}
	return doc
}

// PreviewWebsite handles GET /api/websites/{id}/preview, serving the
// assembled document inline.
func (a *API) PreviewWebsite(w http.ResponseWriter, r *http.Request) {
	id, ok := websiteID(w, r)
	if !ok {
		return
	}
	site, ok := a.findWebsite(w, id)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(a.assemble(r, site))
}

// DownloadWebsite handles GET /api/websites/{id}/download, serving the
// assembled document as an attachment named after the site title.
func (a *API) DownloadWebsite(w http.ResponseWriter, r *http.Request) {
	id, ok := websiteID(w, r)
	if !ok {
		return
	}
	site, ok := a.findWebsite(w, id)
	if !ok {
		return
	}

	filename := slug.Filename(site.Title, ".html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(a.assemble(r, site))
}

// PublishWebsite handles POST /api/websites/{id}/publish: uploads the
// assembled document to object storage, records the public URL and marks
// the website public.
func (a *API) PublishWebsite(w http.ResponseWriter, r *http.Request) {
	if a.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, "Publishing is not configured")
		return
	}

	id, ok := websiteID(w, r)
	if !ok {
		return
	}
	site, ok := a.findWebsite(w, id)
	if !ok {
		return
	}

	doc := render.Document(site.Title, site.HTML, site.CSS, site.Script())
	key := site.ID.String() + "/index.html"

	if err := a.publisher.Upload(r.Context(), key, "text/html; charset=utf-8", bytes.NewReader(doc), int64(len(doc))); err != nil {
		slog.Error("publish upload failed", "website_id", id, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to upload website")
		return
	}

	url := a.publisher.FileURL(key)
	if err := a.websites.SetPreviewURL(id, url); err != nil {
		slog.Error("publish record failed", "website_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to record published URL")
		return
	}

	if a.previews != nil {
		a.previews.Invalidate(r.Context(), id)
	}

	slog.Info("website published", "website_id", id, "url", url)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"previewUrl": url,
	})
}

// GetPrompt handles GET /api/prompts/{id}, exposing the prompt record
// independently of any website row.
func (a *API) GetPrompt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid prompt id")
		return
	}

	prompt, err := a.prompts.FindByID(id)
	if err != nil {
		slog.Error("prompt lookup failed", "prompt_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load prompt")
		return
	}
	if prompt == nil {
		writeError(w, http.StatusNotFound, "Prompt not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"prompt":  prompt,
	})
}
