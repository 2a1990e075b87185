// Package generation drives the remote thumbnail-generation workflow
// against the gateway's /api/generate endpoint.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
)

// ErrGenerationFailed is the only failure the workflow surfaces. The
// caller may retry by invoking Generate again; no retry happens here.
var ErrGenerationFailed = errors.New("thumbnail generation failed")

// Client calls the generation gateway. No timeout is enforced beyond the
// transport default; cancellation rides the caller's context.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
	Error    string `json:"error"`
}

// Generate requests a thumbnail for the prompt text and returns the image
// data URI. An empty prompt is a caller bug, not a generation failure.
func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	promptText = strings.TrimSpace(promptText)
	if promptText == "" {
		return "", errors.New("prompt text is required")
	}

	payload, err := json.Marshal(generateRequest{Prompt: promptText})
	if err != nil {
		return "", ErrGenerationFailed
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", ErrGenerationFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("generation request failed: %v", err)
		return "", ErrGenerationFailed
	}
	defer resp.Body.Close()

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("generation response unreadable: %v", err)
		return "", ErrGenerationFailed
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("generation rejected status=%d error=%q", resp.StatusCode, parsed.Error)
		return "", ErrGenerationFailed
	}
	if parsed.ImageURL == "" {
		return "", ErrGenerationFailed
	}
	return parsed.ImageURL, nil
}
