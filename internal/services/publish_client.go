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

// PublishClient notifies the posting automation workflow that a user
// approved a draft for publication.
type PublishClient struct {
	url        string
	httpClient *http.Client
	log        *zap.Logger
}

func NewPublishClient(url string, timeout time.Duration, log *zap.Logger) *PublishClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &PublishClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ApprovedDraftPayload mirrors what the posting workflow expects. Field
// names are camelCase by contract with the automation side.
type ApprovedDraftPayload struct {
	DraftID              string  `json:"draftId"`
	CampaignID           string  `json:"campaignId"`
	CampaignName         string  `json:"campaignName"`
	Idea                 string  `json:"idea"`
	Platform             string  `json:"platform"`
	Format               string  `json:"format"`
	AssetSource          *string `json:"assetSource"`
	GeneratedText        *string `json:"generatedText"`
	GeneratedImageURL    *string `json:"generatedImageUrl"`
	GeneratedVideoURL    *string `json:"generatedVideoUrl"`
	UserUploadedImageURL *string `json:"userUploadedImageUrl"`
	UserUploadedVideoURL *string `json:"userUploadedVideoUrl"`
	Status               string  `json:"status"`
	IsMediaReady         *bool   `json:"isMediaReady"`
	UserID               string  `json:"userId"`
	Timestamp            string  `json:"timestamp"`
}

func (c *PublishClient) PublishApprovedDraft(ctx context.Context, payload ApprovedDraftPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &UpstreamError{Status: resp.StatusCode, Body: string(b)}
	}

	return nil
}
