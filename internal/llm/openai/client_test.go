package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/statline/statline/internal/llm"
)

func chatResponse(t *testing.T, content string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	if err != nil {
		t.Fatalf("marshal chat response: %v", err)
	}
	return b
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:          "test-key",
		BaseURL:         srv.URL,
		Model:           "test-model",
		LenientSanitize: true,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSynthesizeRulesOK(t *testing.T) {
	content := `{
		"anchors": [{"name": "player_header", "patterns": ["PLAYER"], "pattern_type": "exact", "required": true}],
		"regions": [{"name": "varsity", "type": "table", "start_anchor": "player_header"}],
		"extraction_ops": [{"field": "players[].name", "source": "region.varsity.column[0]", "transform": "normalize_name"}]
	}`
	var gotAuth, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write(chatResponse(t, content))
	})

	rs, raw, err := c.SynthesizeRules(context.Background(), llm.SynthesisRequest{
		DocumentType: "basketball_box_score",
	})
	if err != nil {
		t.Fatalf("SynthesizeRules: %v", err)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q, want /chat/completions", gotPath)
	}
	if len(rs.Anchors) != 1 || rs.Anchors[0].Name != "player_header" {
		t.Errorf("anchors = %+v, want player_header", rs.Anchors)
	}
	if len(rs.ExtractionOps) != 1 || rs.ExtractionOps[0].Transform != "normalize_name" {
		t.Errorf("ops = %+v", rs.ExtractionOps)
	}
	if len(raw) == 0 {
		t.Error("raw content should be returned for auditing")
	}
}

func TestSynthesizeRulesLenientRepair(t *testing.T) {
	// Single pattern string and renamed keys; strict validation fails,
	// lenient sanitize should repair it.
	content := "```json\n" + `{
		"anchors": [{"name": "score_label", "pattern": "FINAL SCORE", "required": true}],
		"ops": [{"path": "final_score", "from": "anchor.score_label.text"}]
	}` + "\n```"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, content))
	})

	rs, _, err := c.SynthesizeRules(context.Background(), llm.SynthesisRequest{})
	if err != nil {
		t.Fatalf("SynthesizeRules: %v", err)
	}
	if len(rs.Anchors) != 1 || len(rs.Anchors[0].Patterns) != 1 || rs.Anchors[0].Patterns[0] != "FINAL SCORE" {
		t.Errorf("anchors = %+v, want single FINAL SCORE pattern", rs.Anchors)
	}
	if len(rs.ExtractionOps) != 1 || rs.ExtractionOps[0].Source != "anchor.score_label.text" {
		t.Errorf("ops = %+v", rs.ExtractionOps)
	}
}

func TestSynthesizeRulesStrictRejects(t *testing.T) {
	content := `{"anchors": [{"name": "a", "pattern": "X"}], "ops": []}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, content))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if _, _, err := c.SynthesizeRules(context.Background(), llm.SynthesisRequest{}); err == nil {
		t.Fatal("expected schema validation error with lenient sanitize off")
	}
}

func TestSynthesizeRulesHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	if _, _, err := c.SynthesizeRules(context.Background(), llm.SynthesisRequest{}); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestSynthesizeRulesNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	})
	if _, _, err := c.SynthesizeRules(context.Background(), llm.SynthesisRequest{}); err == nil {
		t.Fatal("expected error on empty choices")
	}
}
