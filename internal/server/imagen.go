package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"prompt-library/internal/config"
)

// The raw prompt is wrapped so the model produces thumbnails rather than
// literal scenes.
const thumbnailPromptTemplate = "Create a visually appealing, abstract, stylized thumbnail representing the concept: %q"

// imagenClient calls the Imagen predict endpoint. No timeout is set here;
// cancellation rides the request context.
type imagenClient struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

func newImagenClient(cfg config.Config) *imagenClient {
	return &imagenClient{
		endpoint: strings.TrimRight(cfg.GeminiEndpoint, "/"),
		model:    cfg.GeminiModel,
		apiKey:   cfg.APIKey,
		client:   http.DefaultClient,
	}
}

type imagenRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParameters `json:"parameters"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMIMEType string `json:"outputMimeType"`
}

type imagenResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
	} `json:"predictions"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// generateThumbnail requests one square PNG for the prompt and returns its
// base64-encoded bytes.
func (c *imagenClient) generateThumbnail(ctx context.Context, prompt string) (string, error) {
	reqBody := imagenRequest{
		Instances: []imagenInstance{
			{Prompt: fmt.Sprintf(thumbnailPromptTemplate, prompt)},
		},
		Parameters: imagenParameters{
			SampleCount:    1,
			AspectRatio:    "1:1",
			OutputMIMEType: "image/png",
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to build image model request")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:predict", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build image model request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach the image model")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image model response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image model request failed (%d)", resp.StatusCode)
	}

	var parsed imagenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse image model response")
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return "", fmt.Errorf("image model error: %s", parsed.Error.Message)
	}
	if len(parsed.Predictions) == 0 || parsed.Predictions[0].BytesBase64Encoded == "" {
		return "", errors.New("image model returned no images")
	}
	return parsed.Predictions[0].BytesBase64Encoded, nil
}
