package generation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateReturnsImageURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/generate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"imageUrl":"data:image/png;base64,AAAA"}`))
	}))
	t.Cleanup(ts.Close)

	client := NewClient(ts.URL)
	imageURL, err := client.Generate(context.Background(), "a red fox in snow")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if imageURL != "data:image/png;base64,AAAA" {
		t.Fatalf("unexpected image url %q", imageURL)
	}
}

func TestGenerateGatewayErrorIsGeneric(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"the image could not be generated"}`))
	}))
	t.Cleanup(ts.Close)

	client := NewClient(ts.URL)
	_, err := client.Generate(context.Background(), "a red fox in snow")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerateNetworkErrorIsGeneric(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := ts.URL
	ts.Close()

	client := NewClient(baseURL)
	_, err := client.Generate(context.Background(), "a red fox in snow")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerateEmptyPromptIsCallerError(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")
	_, err := client.Generate(context.Background(), "   ")
	if err == nil {
		t.Fatal("expected an error for empty prompt")
	}
	if errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("empty prompt is a caller error, not a generation failure: %v", err)
	}
}
