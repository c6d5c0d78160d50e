package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// GenerationClient forwards draft submissions to the external n8n
// generation webhook. One POST per submission, no retries.
type GenerationClient struct {
	url        string
	httpClient *http.Client
	log        *zap.Logger
}

func NewGenerationClient(url string, timeout time.Duration, log *zap.Logger) *GenerationClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GenerationClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// RequestGeneration sends the payload verbatim as JSON and returns the raw
// JSON response body. The response shape is not stable across the
// automation service's branches; callers normalize it separately.
func (c *GenerationClient) RequestGeneration(ctx context.Context, payload map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if !json.Valid(respBody) {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: "response is not valid JSON"}
	}

	return json.RawMessage(respBody), nil
}
