package llm

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/statline/statline/internal/common"
)

func TestSendJSONCarriesRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	ctx := common.WithRequestID(context.Background(), "rid-123")
	raw, status, err := SendJSON(ctx, srv.Client(), srv.URL, map[string]any{"a": 1}, nil, logger)
	if err != nil {
		t.Fatalf("SendJSON: %v", err)
	}
	if status != http.StatusOK || !bytes.Contains(raw, []byte(`"ok"`)) {
		t.Errorf("status = %d, raw = %s", status, raw)
	}
	if !strings.Contains(logs.String(), "req_id=rid-123") {
		t.Errorf("request and response logs do not carry the caller's request id:\n%s", logs.String())
	}
}

func TestSendJSONNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream sad`))
	}))
	t.Cleanup(srv.Close)

	raw, status, err := SendJSON(context.Background(), srv.Client(), srv.URL, nil, nil, testLogger())
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", status)
	}
	if !bytes.Contains(raw, []byte("upstream sad")) {
		t.Errorf("body not returned alongside the error: %s", raw)
	}
}
