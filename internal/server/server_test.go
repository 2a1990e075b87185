package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prompt-library/internal/config"
	"prompt-library/internal/library"

	"golang.org/x/text/language"
)

func newTestConfig() config.Config {
	cfg := config.Default()
	cfg.APIKey = "test-key"
	return cfg
}

func newTestServer(t *testing.T, cfg config.Config) (*httptest.Server, *library.Store) {
	t.Helper()
	store := library.NewStore(nil, language.German)
	srv := New(store, cfg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", data, err)
	}
	return body
}

func assertErrorField(t *testing.T, body map[string]any) string {
	t.Helper()
	message, ok := body["error"].(string)
	if !ok || message == "" {
		t.Fatalf("expected an error field, got %#v", body)
	}
	return message
}
