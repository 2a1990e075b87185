package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newStubModel(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestGenerateReturnsDataURI(t *testing.T) {
	cfg := newTestConfig()
	cfg.GeminiEndpoint = newStubModel(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/"+cfg.GeminiModel+":predict" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		var req imagenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("unreadable upstream request: %v", err)
		}
		if len(req.Instances) != 1 || !strings.Contains(req.Instances[0].Prompt, "a red fox in snow") {
			t.Errorf("raw prompt missing from enriched prompt: %#v", req.Instances)
		}
		if req.Parameters.SampleCount != 1 || req.Parameters.AspectRatio != "1:1" {
			t.Errorf("unexpected parameters: %#v", req.Parameters)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"QUJD","mimeType":"image/png"}]}`))
	})
	ts, _ := newTestServer(t, cfg)

	resp := doJSON(t, ts, http.MethodPost, "/api/generate", `{"prompt":"a red fox in snow"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	imageURL, _ := body["imageUrl"].(string)
	if !strings.HasPrefix(imageURL, "data:image/png;base64,") {
		t.Fatalf("expected a PNG data URI, got %q", imageURL)
	}
}

func TestGenerateRejectsMissingPrompt(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "blank prompt", body: `{"prompt":"   "}`},
		{name: "not json", body: `prompt`},
	}
	cfg := newTestConfig()
	cfg.GeminiEndpoint = newStubModel(t, func(http.ResponseWriter, *http.Request) {
		t.Error("the model must not be called for a rejected request")
	})
	ts, _ := newTestServer(t, cfg)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, ts, http.MethodPost, "/api/generate", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
			}
			assertErrorField(t, decodeBody(t, resp))
		})
	}
}

func TestGenerateZeroImagesIsServerError(t *testing.T) {
	cfg := newTestConfig()
	cfg.GeminiEndpoint = newStubModel(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions":[]}`))
	})
	ts, _ := newTestServer(t, cfg)

	resp := doJSON(t, ts, http.MethodPost, "/api/generate", `{"prompt":"a red fox in snow"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	assertErrorField(t, decodeBody(t, resp))
}

func TestGenerateUpstreamFailureStaysGeneric(t *testing.T) {
	cfg := newTestConfig()
	cfg.GeminiEndpoint = newStubModel(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded for project 12345"}}`))
	})
	ts, _ := newTestServer(t, cfg)

	resp := doJSON(t, ts, http.MethodPost, "/api/generate", `{"prompt":"a red fox in snow"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	message := assertErrorField(t, decodeBody(t, resp))
	if strings.Contains(message, "quota") || strings.Contains(message, "12345") {
		t.Fatalf("upstream detail leaked to the client: %q", message)
	}
}
