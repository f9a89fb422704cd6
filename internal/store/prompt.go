// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the PostgreSQL persistence layer. Each entity has
// its own store type wrapping a shared *sql.DB pool.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"sitesmith/internal/models"
)

// PromptStore handles all prompt-related database operations.
type PromptStore struct {
	db *sql.DB
}

// NewPromptStore creates a new PromptStore with the given database connection.
func NewPromptStore(db *sql.DB) *PromptStore {
	return &PromptStore{db: db}
}

// Create inserts a new prompt and returns it with the generated ID and
// timestamps. Status defaults to processing when unset, recording intent
// before the model is called.
func (s *PromptStore) Create(p *models.Prompt) (*models.Prompt, error) {
	if p.Status == "" {
		p.Status = models.PromptStatusProcessing
	}

	result := &models.Prompt{}
	err := s.db.QueryRow(`
		INSERT INTO prompts (user_id, prompt_text, status)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, prompt_text, status, created_at, updated_at
	`, p.OwnerID, p.Text, p.Status).Scan(
		&result.ID, &result.OwnerID, &result.Text, &result.Status,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}
	return result, nil
}

// FindByID retrieves a prompt by its UUID. Returns nil if not found.
func (s *PromptStore) FindByID(id uuid.UUID) (*models.Prompt, error) {
	p := &models.Prompt{}
	err := s.db.QueryRow(`
		SELECT id, user_id, prompt_text, status, created_at, updated_at
		FROM prompts WHERE id = $1
	`, id).Scan(
		&p.ID, &p.OwnerID, &p.Text, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find prompt by id: %w", err)
	}
	return p, nil
}

// UpdateStatus transitions a prompt to the given status.
func (s *PromptStore) UpdateStatus(id uuid.UUID, status models.PromptStatus) error {
	_, err := s.db.Exec(`
		UPDATE prompts SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update prompt status: %w", err)
	}
	return nil
}

// CountByOwner returns the number of prompts submitted by the given owner.
func (s *PromptStore) CountByOwner(ownerID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM prompts WHERE user_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count prompts: %w", err)
	}
	return count, nil
}
