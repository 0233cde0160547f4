package credentials

import (
	"context"
	"testing"

	"github.com/eternisai/text2mindmap/internal/logger"
	"github.com/eternisai/text2mindmap/internal/session"
)

type mapStore map[string]string

func (m mapStore) Secret(name string) (string, bool) {
	v, ok := m[name]
	return v, ok && v != ""
}

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name                   string
		store, session, prompt string
		want                   Resolution
	}{
		{"all present", "s", "x", "p", Resolution{"s", SourceStore}},
		{"store only", "s", "", "", Resolution{"s", SourceStore}},
		{"session over prompt", "", "x", "p", Resolution{"x", SourceSession}},
		{"session only", "", "x", "", Resolution{"x", SourceSession}},
		{"prompt only", "", "", "p", Resolution{"p", SourcePrompt}},
		{"blank store skipped", "  ", "x", "", Resolution{"x", SourceSession}},
		{"nothing", "", "", "", Resolution{Source: SourceNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.store, tt.session, tt.prompt)
			if got != tt.want {
				t.Errorf("Resolve(%q, %q, %q) = %+v, want %+v", tt.store, tt.session, tt.prompt, got, tt.want)
			}
		})
	}
}

func TestResolver_PromptStoredInSession(t *testing.T) {
	r := NewResolver(mapStore{}, "GROQ_API_KEY", logger.Discard())
	sess := session.NewStore().Create()

	res := r.Resolve(context.Background(), sess, "typed-key")
	if res.Source != SourcePrompt || res.Key != "typed-key" {
		t.Fatalf("got %+v", res)
	}
	if sess.Credential() != "typed-key" {
		t.Fatalf("session credential = %q", sess.Credential())
	}

	// Later renders reuse the session value even without prompt input.
	res = r.Resolve(context.Background(), sess, "")
	if res.Source != SourceSession || res.Key != "typed-key" {
		t.Errorf("got %+v, want session reuse", res)
	}
}

func TestResolver_StoreWinsAndSessionUntouched(t *testing.T) {
	r := NewResolver(mapStore{"GROQ_API_KEY": "configured"}, "GROQ_API_KEY", logger.Discard())
	sess := session.NewStore().Create()

	res := r.Resolve(context.Background(), sess, "typed-key")
	if res.Source != SourceStore || res.Key != "configured" {
		t.Fatalf("got %+v", res)
	}
	if sess.Credential() != "" {
		t.Errorf("store-sourced key must not be written to the session")
	}
}

func TestResolver_NoSource(t *testing.T) {
	r := NewResolver(nil, "GROQ_API_KEY", logger.Discard())

	res := r.Resolve(context.Background(), nil, "")
	if res.Ok() {
		t.Errorf("expected no credential, got %+v", res)
	}
}
