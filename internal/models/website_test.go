package models

import (
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestWebsiteScript(t *testing.T) {
	w := &Website{}
	if got := w.Script(); got != "" {
		t.Errorf("Script with nil JS: got %q, want empty", got)
	}

	w.JS = strPtr("console.log('hi')")
	if got := w.Script(); got != "console.log('hi')" {
		t.Errorf("Script: got %q", got)
	}
}

func TestWebsiteOwnedBy(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	anon := &Website{}
	if anon.OwnedBy(owner) {
		t.Error("anonymous website should belong to nobody")
	}

	w := &Website{OwnerID: &owner}
	if !w.OwnedBy(owner) {
		t.Error("expected ownership for matching ID")
	}
	if w.OwnedBy(other) {
		t.Error("unexpected ownership for different ID")
	}
}

func TestWebsiteUpdateApplyPartial(t *testing.T) {
	w := &Website{
		Title:       "Original",
		Description: "Desc",
		HTML:        "<h1>Hi</h1>",
		CSS:         "h1{color:red}",
		IsPublic:    false,
	}

	pub := true
	changed := (&WebsiteUpdate{IsPublic: &pub}).Apply(w)
	if !changed {
		t.Error("expected change")
	}
	if !w.IsPublic {
		t.Error("is_public not applied")
	}

	// Everything else must be untouched.
	if w.Title != "Original" || w.Description != "Desc" ||
		w.HTML != "<h1>Hi</h1>" || w.CSS != "h1{color:red}" || w.JS != nil {
		t.Errorf("unrelated fields changed: %+v", w)
	}
}

func TestWebsiteUpdateApplyNoop(t *testing.T) {
	w := &Website{Title: "Same"}
	changed := (&WebsiteUpdate{Title: strPtr("Same")}).Apply(w)
	if changed {
		t.Error("identical value should not count as a change")
	}
}

func TestWebsiteUpdateApplyJS(t *testing.T) {
	w := &Website{}
	changed := (&WebsiteUpdate{JS: strPtr("alert(1)")}).Apply(w)
	if !changed {
		t.Error("expected change")
	}
	if w.Script() != "alert(1)" {
		t.Errorf("js: got %q", w.Script())
	}
}
