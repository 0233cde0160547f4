package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObserveGeneration(t *testing.T) {
	m := New(func() int { return 3 })
	m.ObserveGeneration("success", time.Second)
	m.ObserveGeneration("remote_error", 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`text2mindmap_generations_total{outcome="success"} 1`,
		`text2mindmap_generations_total{outcome="remote_error"} 1`,
		`text2mindmap_completion_duration_seconds_count 1`,
		`text2mindmap_sessions 3`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestObserveGeneration_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveGeneration("success", time.Second)
}

func TestRegistry_Families(t *testing.T) {
	m := New(func() int { return 0 })
	m.ObserveGeneration("success", time.Second)

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"text2mindmap_generations_total",
		"text2mindmap_completion_duration_seconds",
		"text2mindmap_sessions",
		"go_goroutines",
	} {
		if !names[want] {
			t.Errorf("registry missing family %q", want)
		}
	}
}

func TestRegistry_NoSessionGaugeWithoutSource(t *testing.T) {
	families, err := New(nil).Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() == "text2mindmap_sessions" {
			t.Error("sessions gauge registered without a source")
		}
	}
}
