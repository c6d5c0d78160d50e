package services

import (
	"context"
	"encoding/json"

	"github.com/contentstudio/backend/internal/events"
	"github.com/contentstudio/backend/internal/models"
	"github.com/contentstudio/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type generationRequester interface {
	RequestGeneration(ctx context.Context, payload map[string]any) (json.RawMessage, error)
}

type draftCommitter interface {
	ApplyGeneration(ctx context.Context, id uuid.UUID, gen repositories.GeneratedContent) error
}

type auditLogger interface {
	Log(ctx context.Context, entry models.AuditLog) error
}

// RelayService is the stateless bridge between a draft submission and the
// external generation webhook: forward the payload, normalize whatever
// shape comes back, commit the result against the originating draft row.
// Each invocation is independent; concurrent invocations touch distinct
// draft rows and need no coordination.
type RelayService struct {
	client    generationRequester
	committer draftCommitter
	audit     auditLogger
	publisher events.Publisher
	log       *zap.Logger
}

func NewRelayService(
	client generationRequester,
	committer draftCommitter,
	audit auditLogger,
	publisher events.Publisher,
	log *zap.Logger,
) *RelayService {
	return &RelayService{
		client:    client,
		committer: committer,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

type GenerationResult struct {
	DraftID  uuid.UUID
	Text     string
	ImageURL string
	VideoURL string
}

// ProcessDraft runs the full pipeline for one submission: exactly one
// outbound call and exactly one store write. On any error the draft is left
// in its prior state; failures are surfaced through logs and the event
// stream rather than a status write (the dashboard treats a long-stuck
// draft_created row as pending).
func (s *RelayService) ProcessDraft(ctx context.Context, payload map[string]any) (*GenerationResult, error) {
	rawID, _ := payload["draft_id"].(string)
	if rawID == "" {
		return nil, &ValidationError{Field: "draft_id", Msg: "required"}
	}
	draftID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, &ValidationError{Field: "draft_id", Msg: "must be a UUID"}
	}

	resp, err := s.client.RequestGeneration(ctx, payload)
	if err != nil {
		s.publishFailure(draftID, err)
		return nil, err
	}

	gen := ExtractGeneratedContent(resp)

	if err := s.committer.ApplyGeneration(ctx, draftID, gen); err != nil {
		s.publishFailure(draftID, err)
		return nil, err
	}

	s.log.Info("draft generation committed",
		zap.String("draft_id", draftID.String()),
		zap.Bool("has_text", gen.Text != ""),
		zap.Bool("has_media", gen.HasMedia()),
	)

	if s.audit != nil {
		_ = s.audit.Log(ctx, models.AuditLog{
			ActorType:  "relay",
			Action:     models.AuditDraftGenerated,
			EntityType: "content_draft",
			EntityID:   &draftID,
		})
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.StreamDraft, events.Event{
			Type: events.EventDraftStatusChanged,
			Payload: map[string]any{
				"draft_id": draftID.String(),
				"status":   models.DraftStatusGenerated,
			},
		})
	}

	return &GenerationResult{
		DraftID:  draftID,
		Text:     gen.Text,
		ImageURL: gen.ImageURL,
		VideoURL: gen.VideoURL,
	}, nil
}

func (s *RelayService) publishFailure(draftID uuid.UUID, cause error) {
	if s.publisher == nil {
		return
	}
	// Best effort; the boundary handler logs the error itself.
	_ = s.publisher.Publish(context.Background(), events.StreamDraft, events.Event{
		Type: events.EventGenerationFailed,
		Payload: map[string]any{
			"draft_id": draftID.String(),
			"error":    cause.Error(),
		},
	})
}
