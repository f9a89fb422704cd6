// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"sitesmith/internal/models"
)

// websiteColumns is the column list shared by every website query.
const websiteColumns = `id, prompt_id, user_id, title, description,
	       html_content, css_content, js_content, preview_url, is_public,
	       created_at, updated_at`

// WebsiteStore handles all generated-website database operations.
type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore creates a new WebsiteStore with the given database connection.
func NewWebsiteStore(db *sql.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

// Create inserts a new generated website and returns it with the generated
// ID and timestamps.
func (s *WebsiteStore) Create(w *models.Website) (*models.Website, error) {
	result := &models.Website{}
	err := s.db.QueryRow(`
		INSERT INTO generated_websites
			(prompt_id, user_id, title, description, html_content, css_content, js_content, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+websiteColumns+`
	`, w.PromptID, w.OwnerID, w.Title, w.Description, w.HTML, w.CSS, w.JS, w.IsPublic,
	).Scan(
		&result.ID, &result.PromptID, &result.OwnerID, &result.Title, &result.Description,
		&result.HTML, &result.CSS, &result.JS, &result.PreviewURL, &result.IsPublic,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create website: %w", err)
	}
	return result, nil
}

// FindByID retrieves a website by its UUID. Returns nil if not found.
func (s *WebsiteStore) FindByID(id uuid.UUID) (*models.Website, error) {
	w := &models.Website{}
	err := s.db.QueryRow(`
		SELECT `+websiteColumns+` FROM generated_websites WHERE id = $1
	`, id).Scan(
		&w.ID, &w.PromptID, &w.OwnerID, &w.Title, &w.Description,
		&w.HTML, &w.CSS, &w.JS, &w.PreviewURL, &w.IsPublic,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by id: %w", err)
	}
	return w, nil
}

// ListByOwner returns all websites belonging to the given owner, newest
// first. Ties on created_at are broken by id so the order is total. Each
// call queries live data, never a snapshot.
func (s *WebsiteStore) ListByOwner(ownerID uuid.UUID) ([]models.Website, error) {
	rows, err := s.db.Query(`
		SELECT `+websiteColumns+`
		FROM generated_websites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list websites by owner: %w", err)
	}
	defer rows.Close()

	var items []models.Website
	for rows.Next() {
		var w models.Website
		if err := rows.Scan(
			&w.ID, &w.PromptID, &w.OwnerID, &w.Title, &w.Description,
			&w.HTML, &w.CSS, &w.JS, &w.PreviewURL, &w.IsPublic,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

// Update persists the full current state of a website. Callers merge
// partial changes into a fetched record first.
func (s *WebsiteStore) Update(w *models.Website) error {
	_, err := s.db.Exec(`
		UPDATE generated_websites SET
			title = $1, description = $2, html_content = $3, css_content = $4,
			js_content = $5, is_public = $6, updated_at = NOW()
		WHERE id = $7
	`, w.Title, w.Description, w.HTML, w.CSS, w.JS, w.IsPublic, w.ID)
	if err != nil {
		return fmt.Errorf("update website: %w", err)
	}
	return nil
}

// SetPreviewURL records where the published document was uploaded and marks
// the website public.
func (s *WebsiteStore) SetPreviewURL(id uuid.UUID, url string) error {
	_, err := s.db.Exec(`
		UPDATE generated_websites SET preview_url = $1, is_public = TRUE, updated_at = NOW()
		WHERE id = $2
	`, url, id)
	if err != nil {
		return fmt.Errorf("set website preview url: %w", err)
	}
	return nil
}

// Delete removes a website by ID. Returns false when no row existed.
// The originating prompt row is intentionally retained.
func (s *WebsiteStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM generated_websites WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete website: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete website rows affected: %w", err)
	}
	return n > 0, nil
}

// FindByPromptID retrieves the website generated for a prompt, if any.
func (s *WebsiteStore) FindByPromptID(promptID uuid.UUID) (*models.Website, error) {
	w := &models.Website{}
	err := s.db.QueryRow(`
		SELECT `+websiteColumns+` FROM generated_websites WHERE prompt_id = $1
	`, promptID).Scan(
		&w.ID, &w.PromptID, &w.OwnerID, &w.Title, &w.Description,
		&w.HTML, &w.CSS, &w.JS, &w.PreviewURL, &w.IsPublic,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by prompt id: %w", err)
	}
	return w, nil
}
