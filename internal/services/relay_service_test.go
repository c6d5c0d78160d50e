package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/contentstudio/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	response    json.RawMessage
	err         error
	calls       int
	lastPayload map[string]any
}

func (f *fakeGenerator) RequestGeneration(_ context.Context, payload map[string]any) (json.RawMessage, error) {
	f.calls++
	f.lastPayload = payload
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type fakeCommitter struct {
	err     error
	calls   int
	lastID  uuid.UUID
	lastGen repositories.GeneratedContent
}

func (f *fakeCommitter) ApplyGeneration(_ context.Context, id uuid.UUID, gen repositories.GeneratedContent) error {
	f.calls++
	f.lastID = id
	f.lastGen = gen
	return f.err
}

func newRelayForTest(gen *fakeGenerator, com *fakeCommitter) *RelayService {
	return NewRelayService(gen, com, nil, nil, zap.NewNop())
}

func TestProcessDraftHappyPath(t *testing.T) {
	draftID := uuid.New()
	gen := &fakeGenerator{response: json.RawMessage(`[{"generated_text":"T","url":["img"]}]`)}
	com := &fakeCommitter{}
	relay := newRelayForTest(gen, com)

	payload := map[string]any{
		"draft_id":      draftID.String(),
		"campaign_name": "Spring Launch",
		"platform":      "instagram",
	}

	result, err := relay.ProcessDraft(context.Background(), payload)
	if err != nil {
		t.Fatalf("ProcessDraft: %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("upstream calls = %d, want 1", gen.calls)
	}
	if gen.lastPayload["campaign_name"] != "Spring Launch" {
		t.Errorf("payload not forwarded verbatim: %v", gen.lastPayload)
	}
	if com.calls != 1 {
		t.Errorf("store writes = %d, want 1", com.calls)
	}
	if com.lastID != draftID {
		t.Errorf("committed draft id = %s, want %s", com.lastID, draftID)
	}
	if com.lastGen.Text != "T" || com.lastGen.ImageURL != "img" {
		t.Errorf("committed fields = %+v", com.lastGen)
	}
	if result.DraftID != draftID || result.Text != "T" || result.ImageURL != "img" || result.VideoURL != "" {
		t.Errorf("result = %+v", result)
	}
}

func TestProcessDraftMissingDraftID(t *testing.T) {
	gen := &fakeGenerator{response: json.RawMessage(`{}`)}
	com := &fakeCommitter{}
	relay := newRelayForTest(gen, com)

	_, err := relay.ProcessDraft(context.Background(), map[string]any{"campaign_name": "x"})

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if gen.calls != 0 {
		t.Errorf("no upstream call expected on validation failure, got %d", gen.calls)
	}
	if com.calls != 0 {
		t.Errorf("no store write expected on validation failure, got %d", com.calls)
	}
}

func TestProcessDraftMalformedDraftID(t *testing.T) {
	gen := &fakeGenerator{response: json.RawMessage(`{}`)}
	relay := newRelayForTest(gen, &fakeCommitter{})

	_, err := relay.ProcessDraft(context.Background(), map[string]any{"draft_id": "not-a-uuid"})

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if gen.calls != 0 {
		t.Errorf("no upstream call expected, got %d", gen.calls)
	}
}

func TestProcessDraftUpstreamFailureSkipsCommit(t *testing.T) {
	gen := &fakeGenerator{err: &UpstreamError{Status: 502, Body: "bad gateway"}}
	com := &fakeCommitter{}
	relay := newRelayForTest(gen, com)

	_, err := relay.ProcessDraft(context.Background(), map[string]any{"draft_id": uuid.New().String()})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if com.calls != 0 {
		t.Errorf("store write happened despite upstream failure")
	}
}

func TestProcessDraftCommitNotFound(t *testing.T) {
	gen := &fakeGenerator{response: json.RawMessage(`{"generated_text":"T"}`)}
	com := &fakeCommitter{err: repositories.ErrDraftNotFound}
	relay := newRelayForTest(gen, com)

	_, err := relay.ProcessDraft(context.Background(), map[string]any{"draft_id": uuid.New().String()})
	if !errors.Is(err, repositories.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestProcessDraftReplayConverges(t *testing.T) {
	draftID := uuid.New()
	gen := &fakeGenerator{response: json.RawMessage(`{"generated_text":"T","generated_image_url":"I"}`)}
	com := &fakeCommitter{}
	relay := newRelayForTest(gen, com)

	payload := map[string]any{"draft_id": draftID.String()}

	first, err := relay.ProcessDraft(context.Background(), payload)
	if err != nil {
		t.Fatalf("first ProcessDraft: %v", err)
	}
	firstGen := com.lastGen

	second, err := relay.ProcessDraft(context.Background(), payload)
	if err != nil {
		t.Fatalf("second ProcessDraft: %v", err)
	}

	// Two writes happen; both carry identical field values.
	if com.calls != 2 {
		t.Errorf("store writes = %d, want 2", com.calls)
	}
	if com.lastGen != firstGen {
		t.Errorf("replay committed different fields: %+v vs %+v", com.lastGen, firstGen)
	}
	if *first != *second {
		t.Errorf("replay returned different result: %+v vs %+v", first, second)
	}
}

func TestProcessDraftNoMediaLeavesReadinessAlone(t *testing.T) {
	gen := &fakeGenerator{response: json.RawMessage(`{"generated_text":"text only"}`)}
	com := &fakeCommitter{}
	relay := newRelayForTest(gen, com)

	_, err := relay.ProcessDraft(context.Background(), map[string]any{"draft_id": uuid.New().String()})
	if err != nil {
		t.Fatalf("ProcessDraft: %v", err)
	}
	if com.lastGen.HasMedia() {
		t.Errorf("no media extracted but HasMedia() is true: %+v", com.lastGen)
	}
}
