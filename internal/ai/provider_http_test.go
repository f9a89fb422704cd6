// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestServer creates an httptest.Server that responds with the given status
// code and body bytes. The caller must call Close on the returned server.
func newTestServer(t *testing.T, statusCode int, body []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(body)
	}))
}

// openAISuccessBody builds a JSON body matching the OpenAI chat completions
// response format with a single choice containing the given text.
func openAISuccessBody(text string) []byte {
	resp := openAIResponse{
		Choices: []openAIChoice{
			{Message: openAIMessage{Role: "assistant", Content: text}},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

// claudeSuccessBody builds a JSON body matching the Anthropic Messages
// response format with a single text content block.
func claudeSuccessBody(text string) []byte {
	resp := claudeResponse{
		Content: []claudeContentBlock{
			{Type: "text", Text: text},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

// geminiSuccessBody builds a JSON body matching the Gemini generateContent
// response format with a single candidate containing the given text.
func geminiSuccessBody(text string) []byte {
	resp := geminiResponse{
		Candidates: []geminiCandidate{
			{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

// =====================================================================
// OpenAI Provider Tests
// =====================================================================

func TestOpenAIGenerate_Success(t *testing.T) {
	want := `{"title":"Shop","html":"<h1>Shop</h1>"}`
	srv := newTestServer(t, http.StatusOK, openAISuccessBody(want))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: srv.URL,
	})

	got, err := p.Generate(context.Background(), "You build websites.", "A coffee shop site")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Generate: got %q, want %q", got, want)
	}
}

func TestOpenAIGenerate_SendsHeadersAndParameters(t *testing.T) {
	var capturedHeaders http.Header
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header.Clone()
		capturedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(openAISuccessBody("ok"))
	}))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{
		APIKey:      "sk-test-12345",
		Model:       "gpt-4o",
		BaseURL:     srv.URL,
		MaxTokens:   4000,
		Temperature: 0.7,
	})

	if _, err := p.Generate(context.Background(), "system prompt", "user prompt"); err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	if got := capturedHeaders.Get("Authorization"); got != "Bearer sk-test-12345" {
		t.Errorf("Authorization header: got %q", got)
	}
	if got := capturedHeaders.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type header: got %q", got)
	}

	var req openAIRequest
	if err := json.Unmarshal(capturedBody, &req); err != nil {
		t.Fatalf("unmarshal captured body: %v", err)
	}
	if req.Model != "gpt-4o" {
		t.Errorf("model: got %q", req.Model)
	}
	if req.MaxTokens != 4000 {
		t.Errorf("max_tokens: got %d, want 4000", req.MaxTokens)
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature: got %v, want 0.7", req.Temperature)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("messages: got %+v", req.Messages)
	}
}

func TestOpenAIGenerate_APIError(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, []byte(`{"error":{"message":"rate limited"}}`))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "k", Model: "gpt-4o", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "status 429") {
		t.Errorf("error should carry the status code: %v", err)
	}
}

func TestOpenAIGenerate_EmptyChoices(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{"choices":[]}`))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "k", Model: "gpt-4o", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("expected error for empty choices")
	}
}

// =====================================================================
// Claude Provider Tests
// =====================================================================

func TestClaudeGenerate_Success(t *testing.T) {
	want := "claude output"
	srv := newTestServer(t, http.StatusOK, claudeSuccessBody(want))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "k", Model: "claude-sonnet", BaseURL: srv.URL})

	got, err := p.Generate(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != want {
		t.Errorf("Generate: got %q, want %q", got, want)
	}
}

func TestClaudeGenerate_SendsAnthropicHeaders(t *testing.T) {
	var capturedHeaders http.Header
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header.Clone()
		capturedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(claudeSuccessBody("ok"))
	}))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "anthro-key", Model: "claude-sonnet", BaseURL: srv.URL, MaxTokens: 4096})

	if _, err := p.Generate(context.Background(), "sys", "usr"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := capturedHeaders.Get("x-api-key"); got != "anthro-key" {
		t.Errorf("x-api-key: got %q", got)
	}
	if got := capturedHeaders.Get("anthropic-version"); got != "2023-06-01" {
		t.Errorf("anthropic-version: got %q", got)
	}

	var req claudeRequest
	if err := json.Unmarshal(capturedBody, &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.System != "sys" {
		t.Errorf("system: got %q", req.System)
	}
	if req.MaxTokens != 4096 {
		t.Errorf("max_tokens: got %d", req.MaxTokens)
	}
}

func TestClaudeGenerate_NoTextContent(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{"content":[{"type":"tool_use"}]}`))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("expected error when no text block is present")
	}
}

// =====================================================================
// Gemini Provider Tests
// =====================================================================

func TestGeminiGenerate_Success(t *testing.T) {
	want := "gemini output"
	srv := newTestServer(t, http.StatusOK, geminiSuccessBody(want))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "k", Model: "gemini-2.0-flash", BaseURL: srv.URL})

	got, err := p.Generate(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != want {
		t.Errorf("Generate: got %q, want %q", got, want)
	}
}

func TestGeminiGenerate_SendsSystemInstruction(t *testing.T) {
	var capturedPath string
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(geminiSuccessBody("ok"))
	}))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "k", Model: "gemini-2.0-flash", BaseURL: srv.URL, MaxTokens: 2048})

	if _, err := p.Generate(context.Background(), "act as a web developer", "make a site"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.Contains(capturedPath, "gemini-2.0-flash:generateContent") {
		t.Errorf("path: got %q", capturedPath)
	}

	var req geminiRequest
	if err := json.Unmarshal(capturedBody, &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "act as a web developer" {
		t.Errorf("system instruction: got %+v", req.SystemInstruction)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.MaxOutputTokens != 2048 {
		t.Errorf("generation config: got %+v", req.GenerationConfig)
	}
}

func TestGeminiGenerate_NoCandidates(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{"candidates":[]}`))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("expected error for empty candidates")
	}
}

// =====================================================================
// Mistral Provider Tests
// =====================================================================

func TestMistralGenerate_Success(t *testing.T) {
	want := "mistral output"
	srv := newTestServer(t, http.StatusOK, openAISuccessBody(want))
	defer srv.Close()

	p := newMistral(ProviderConfig{APIKey: "k", Model: "mistral-large", BaseURL: srv.URL})

	got, err := p.Generate(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != want {
		t.Errorf("Generate: got %q, want %q", got, want)
	}
}

func TestMistralGenerate_APIError(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized, []byte(`{"message":"bad key"}`))
	defer srv.Close()

	p := newMistral(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("expected error for 401 response")
	}
}

// =====================================================================
// Moderation Tests
// =====================================================================

func TestOpenAIModerator_SafePrompt(t *testing.T) {
	body := []byte(`{"results":[{"flagged":false,"categories":{}}]}`)
	srv := newTestServer(t, http.StatusOK, body)
	defer srv.Close()

	m := newOpenAIModerator("k", srv.URL)

	result, err := m.CheckSafety(context.Background(), "a bakery website")
	if err != nil {
		t.Fatalf("CheckSafety: %v", err)
	}
	if !result.Safe {
		t.Error("expected safe result")
	}
}

func TestOpenAIModerator_FlaggedPrompt(t *testing.T) {
	body := []byte(`{"results":[{"flagged":true,"categories":{"violence":true,"hate/threatening":true,"self_harm":false}}]}`)
	srv := newTestServer(t, http.StatusOK, body)
	defer srv.Close()

	m := newOpenAIModerator("k", srv.URL)

	result, err := m.CheckSafety(context.Background(), "something nasty")
	if err != nil {
		t.Fatalf("CheckSafety: %v", err)
	}
	if result.Safe {
		t.Error("expected unsafe result")
	}
	if len(result.Categories) != 2 {
		t.Errorf("categories: got %v, want 2 entries", result.Categories)
	}
}

func TestMistralModerator_FlaggedPrompt(t *testing.T) {
	body := []byte(`{"results":[{"categories":{"violence_and_threats":true}}]}`)
	srv := newTestServer(t, http.StatusOK, body)
	defer srv.Close()

	m := newMistralModerator("k", srv.URL)

	result, err := m.CheckSafety(context.Background(), "something nasty")
	if err != nil {
		t.Fatalf("CheckSafety: %v", err)
	}
	if result.Safe {
		t.Error("expected unsafe result")
	}
}
