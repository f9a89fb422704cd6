// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PromptStatus represents the lifecycle state of a generation request.
type PromptStatus string

const (
	PromptStatusPending    PromptStatus = "pending"
	PromptStatusProcessing PromptStatus = "processing"
	PromptStatusCompleted  PromptStatus = "completed"
	PromptStatusFailed     PromptStatus = "failed"
)

// Prompt records a single website generation request. One row is created
// per submission, before the model is called, so every attempt is accounted
// for even when generation fails later. The prompt text is immutable.
type Prompt struct {
	ID        uuid.UUID    `json:"id"`
	OwnerID   *uuid.UUID   `json:"owner_id,omitempty"` // nil for anonymous submissions
	Text      string       `json:"prompt_text"`
	Status    PromptStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// IsTerminal returns true once the prompt has reached a final state.
func (p *Prompt) IsTerminal() bool {
	return p.Status == PromptStatusCompleted || p.Status == PromptStatusFailed
}
