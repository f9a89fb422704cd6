// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Artifact is the parsed output of a website generation call: the parts
// that get persisted and later assembled into a standalone document.
type Artifact struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	HTML        string `json:"html"`
	CSS         string `json:"css"`
	JS          string `json:"js"`
}

// parseArtifact decodes the raw model output into an Artifact. Models often
// wrap JSON in Markdown code fences despite instructions, so fences are
// stripped first. An artifact without html or css is useless to render,
// so both are required; title and description get defaults.
func parseArtifact(raw string) (*Artifact, error) {
	cleaned := stripCodeFences(raw)

	var a Artifact
	if err := json.Unmarshal([]byte(cleaned), &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	if strings.TrimSpace(a.HTML) == "" {
		return nil, fmt.Errorf("artifact missing html content")
	}
	if strings.TrimSpace(a.CSS) == "" {
		return nil, fmt.Errorf("artifact missing css content")
	}

	if a.Title == "" {
		a.Title = "Generated Website"
	}
	if a.Description == "" {
		a.Description = "A website generated from your prompt"
	}
	return &a, nil
}

// stripCodeFences removes a surrounding Markdown code fence (``` or
// ```json) from the model output, if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line, including any language tag.
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}

	// Drop the closing fence.
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}
