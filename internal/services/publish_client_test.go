package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestPublishApprovedDraftSendsCamelCasePayload(t *testing.T) {
	var gotBody []byte
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	client := NewPublishClient(srv.URL, 5*time.Second, zap.NewNop())
	text := "generated copy"
	ready := true

	err := client.PublishApprovedDraft(context.Background(), ApprovedDraftPayload{
		DraftID:       "d-1",
		CampaignID:    "c-1",
		CampaignName:  "Spring Launch",
		Idea:          "announce the new line",
		Platform:      "instagram",
		Format:        "reel",
		GeneratedText: &text,
		Status:        "content_generated",
		IsMediaReady:  &ready,
		UserID:        "u-1",
		Timestamp:     "2026-01-02T15:04:05Z",
	})
	if err != nil {
		t.Fatalf("PublishApprovedDraft: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}

	var sent map[string]any
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("sent body is not JSON: %v", err)
	}
	for key, want := range map[string]any{
		"draftId":       "d-1",
		"campaignName":  "Spring Launch",
		"generatedText": "generated copy",
		"isMediaReady":  true,
		"userId":        "u-1",
	} {
		if sent[key] != want {
			t.Errorf("payload[%q] = %v, want %v", key, sent[key], want)
		}
	}
	if _, ok := sent["generatedVideoUrl"]; !ok {
		t.Error("absent media fields should still be present as null")
	}
}

func TestPublishApprovedDraftUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow disabled", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewPublishClient(srv.URL, 5*time.Second, zap.NewNop())
	err := client.PublishApprovedDraft(context.Background(), ApprovedDraftPayload{DraftID: "d-1"})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", upstream.Status)
	}
}

func TestPublishApprovedDraftTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewPublishClient(srv.URL, time.Second, zap.NewNop())
	err := client.PublishApprovedDraft(context.Background(), ApprovedDraftPayload{DraftID: "d-1"})

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
}
