package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client defines the interface for the remote voice provider API.
type Client interface {
	// AddSharedVoice adds the voice identified by voiceID, originally created by
	// ownerID, to the account authenticated by apiKey. name optionally overrides
	// the display name in the target account. A non-2xx response is returned as
	// an *APIError carrying the status code and response body.
	AddSharedVoice(ctx context.Context, apiKey, ownerID, voiceID, name string) error
}

// APIError is a non-2xx response from the provider. The body is captured
// verbatim so it can be persisted into the sync ledger's error column.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a provider client based on the configuration.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &httpClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// addVoiceRequest is the JSON body for the add-shared-voice endpoint.
type addVoiceRequest struct {
	NewName string `json:"new_name,omitempty"`
}

func (c *httpClient) AddSharedVoice(ctx context.Context, apiKey, ownerID, voiceID, name string) error {
	url := fmt.Sprintf("%s/v1/voices/add/%s/%s", c.baseURL, ownerID, voiceID)

	payload, err := json.Marshal(addVoiceRequest{NewName: name})
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// Capture the diagnostic body verbatim, bounded to keep ledger rows sane.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
