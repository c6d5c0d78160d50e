package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/contentstudio/backend/internal/repositories"
	"github.com/contentstudio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) RequestGeneration(_ context.Context, _ map[string]any) (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.response), nil
}

type stubCommitter struct {
	err   error
	calls int
}

func (s *stubCommitter) ApplyGeneration(_ context.Context, _ uuid.UUID, _ repositories.GeneratedContent) error {
	s.calls++
	return s.err
}

func newRelayApp(gen *stubGenerator, com *stubCommitter) *fiber.App {
	relay := services.NewRelayService(gen, com, nil, nil, zap.NewNop())
	handler := NewRelayHandler(relay, zap.NewNop())

	app := fiber.New()
	app.Options("/hooks/process-content-draft", handler.Preflight)
	app.Post("/hooks/process-content-draft", handler.ProcessContentDraft)
	return app
}

func TestPreflightAnsweredBeforeBusinessLogic(t *testing.T) {
	gen := &stubGenerator{response: `{}`}
	com := &stubCommitter{}
	app := newRelayApp(gen, com)

	req := httptest.NewRequest("OPTIONS", "/hooks/process-content-draft", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if len(body) != 0 {
		t.Errorf("expected empty body, got %q", body)
	}

	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization, X-Client-Info, Apikey",
	}
	for k, want := range headers {
		if got := resp.Header.Get(k); got != want {
			t.Errorf("header %s = %q, want %q", k, got, want)
		}
	}

	if gen.calls != 0 {
		t.Errorf("preflight triggered %d upstream calls", gen.calls)
	}
	if com.calls != 0 {
		t.Errorf("preflight triggered %d store writes", com.calls)
	}
}

func TestProcessContentDraftSuccess(t *testing.T) {
	draftID := uuid.New()
	gen := &stubGenerator{response: `[{"generated_text":"hello","url":["img"]}]`}
	com := &stubCommitter{}
	app := newRelayApp(gen, com)

	payload := `{"draft_id":"` + draftID.String() + `","campaign_name":"Launch"}`
	req := httptest.NewRequest("POST", "/hooks/process-content-draft", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("success response missing CORS header, got %q", got)
	}

	var body struct {
		Success           bool    `json:"success"`
		DraftID           string  `json:"draft_id"`
		GeneratedText     *string `json:"generated_text"`
		GeneratedImageURL *string `json:"generated_image_url"`
		GeneratedVideoURL *string `json:"generated_video_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Error("success = false")
	}
	if body.DraftID != draftID.String() {
		t.Errorf("draft_id = %q, want %q", body.DraftID, draftID)
	}
	if body.GeneratedText == nil || *body.GeneratedText != "hello" {
		t.Errorf("generated_text = %v", body.GeneratedText)
	}
	if body.GeneratedImageURL == nil || *body.GeneratedImageURL != "img" {
		t.Errorf("generated_image_url = %v", body.GeneratedImageURL)
	}
	if body.GeneratedVideoURL != nil {
		t.Errorf("generated_video_url = %v, want null", *body.GeneratedVideoURL)
	}
}

func TestProcessContentDraftMissingID(t *testing.T) {
	gen := &stubGenerator{response: `{}`}
	com := &stubCommitter{}
	app := newRelayApp(gen, com)

	req := httptest.NewRequest("POST", "/hooks/process-content-draft", strings.NewReader(`{"campaign_name":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 500 {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Error("success = true on failure")
	}
	if body.Error == "" {
		t.Error("error message missing")
	}
	if gen.calls != 0 || com.calls != 0 {
		t.Errorf("side effects on validation failure: %d calls, %d writes", gen.calls, com.calls)
	}
}

func TestProcessContentDraftUnknownDraft(t *testing.T) {
	gen := &stubGenerator{response: `{"generated_text":"T"}`}
	com := &stubCommitter{err: repositories.ErrDraftNotFound}
	app := newRelayApp(gen, com)

	payload := `{"draft_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest("POST", "/hooks/process-content-draft", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 500 {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("failure response missing CORS header, got %q", got)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Error("success = true on failure")
	}
}

func TestProcessContentDraftInvalidBody(t *testing.T) {
	gen := &stubGenerator{response: `{}`}
	com := &stubCommitter{}
	app := newRelayApp(gen, com)

	req := httptest.NewRequest("POST", "/hooks/process-content-draft", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 500 {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if gen.calls != 0 || com.calls != 0 {
		t.Errorf("side effects on malformed body: %d calls, %d writes", gen.calls, com.calls)
	}
}
