// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Website is a generated site artifact: the model's (or the fallback's)
// title, description and content blobs for a single prompt. Each website
// references exactly one prompt; a prompt has at most one website.
type Website struct {
	ID          uuid.UUID  `json:"id"`
	PromptID    uuid.UUID  `json:"prompt_id"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"` // copied from the prompt
	Title       string     `json:"title"`
	Description string     `json:"description"`
	HTML        string     `json:"html_content"`
	CSS         string     `json:"css_content"`
	JS          *string    `json:"js_content,omitempty"`
	PreviewURL  *string    `json:"preview_url,omitempty"`
	IsPublic    bool       `json:"is_public"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Script returns the JS content, or the empty string when none was generated.
func (w *Website) Script() string {
	if w.JS == nil {
		return ""
	}
	return *w.JS
}

// OwnedBy reports whether the website belongs to the given owner.
// Anonymous websites belong to nobody.
func (w *Website) OwnedBy(ownerID uuid.UUID) bool {
	return w.OwnerID != nil && *w.OwnerID == ownerID
}

// WebsiteUpdate carries a partial update for a website. Nil fields are
// left unchanged.
type WebsiteUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	HTML        *string `json:"html_content,omitempty"`
	CSS         *string `json:"css_content,omitempty"`
	JS          *string `json:"js_content,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// Apply merges the non-nil fields of the update into the website.
// Returns true if anything changed.
func (u *WebsiteUpdate) Apply(w *Website) bool {
	changed := false
	if u.Title != nil && *u.Title != w.Title {
		w.Title = *u.Title
		changed = true
	}
	if u.Description != nil && *u.Description != w.Description {
		w.Description = *u.Description
		changed = true
	}
	if u.HTML != nil && *u.HTML != w.HTML {
		w.HTML = *u.HTML
		changed = true
	}
	if u.CSS != nil && *u.CSS != w.CSS {
		w.CSS = *u.CSS
		changed = true
	}
	if u.JS != nil {
		w.JS = u.JS
		changed = true
	}
	if u.IsPublic != nil && *u.IsPublic != w.IsPublic {
		w.IsPublic = *u.IsPublic
		changed = true
	}
	return changed
}
