package services

import (
	"context"
	"fmt"
	"time"

	"github.com/contentstudio/backend/internal/events"
	"github.com/contentstudio/backend/internal/models"
	"github.com/contentstudio/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type approvedDraftPublisher interface {
	PublishApprovedDraft(ctx context.Context, payload ApprovedDraftPayload) error
}

type DraftService struct {
	draftRepo *repositories.DraftRepo
	auditRepo *repositories.AuditRepo
	publish   approvedDraftPublisher
	events    events.Publisher
	log       *zap.Logger
}

func NewDraftService(
	draftRepo *repositories.DraftRepo,
	auditRepo *repositories.AuditRepo,
	publish approvedDraftPublisher,
	eventsPub events.Publisher,
	log *zap.Logger,
) *DraftService {
	return &DraftService{
		draftRepo: draftRepo,
		auditRepo: auditRepo,
		publish:   publish,
		events:    eventsPub,
		log:       log,
	}
}

func (s *DraftService) Create(ctx context.Context, userID uuid.UUID, d *models.ContentDraft) error {
	d.UserID = userID
	d.Status = models.DraftStatusCreated

	if err := s.draftRepo.Create(ctx, d); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      models.AuditDraftCreated,
		EntityType:  "content_draft",
		EntityID:    &d.ID,
	})

	return nil
}

func (s *DraftService) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.ContentDraft, error) {
	d, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, repositories.ErrDraftNotFound
	}
	return d, nil
}

func (s *DraftService) List(ctx context.Context, userID uuid.UUID, f repositories.DraftFilter) ([]models.ContentDraft, error) {
	f.UserID = &userID
	return s.draftRepo.List(ctx, f)
}

// Post forwards an approved draft to the posting workflow and advances it
// to posted. Only a generated draft may be posted.
func (s *DraftService) Post(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.ContentDraft, error) {
	d, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !models.IsValidDraftTransition(d.Status, models.DraftStatusPosted) {
		return nil, fmt.Errorf("draft in status %q cannot be posted", d.Status)
	}

	payload := ApprovedDraftPayload{
		DraftID:              d.ID.String(),
		CampaignID:           d.CampaignID,
		CampaignName:         d.CampaignName,
		Idea:                 d.Idea,
		Platform:             d.Platform,
		Format:               d.Format,
		AssetSource:          d.AssetSource,
		GeneratedText:        d.GeneratedText,
		GeneratedImageURL:    d.GeneratedImageURL,
		GeneratedVideoURL:    d.GeneratedVideoURL,
		UserUploadedImageURL: d.UserUploadedImageURL,
		UserUploadedVideoURL: d.UserUploadedVideoURL,
		Status:               d.Status,
		IsMediaReady:         d.IsMediaReady,
		UserID:               d.UserID.String(),
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.publish.PublishApprovedDraft(ctx, payload); err != nil {
		return nil, err
	}

	if err := s.draftRepo.MarkPosted(ctx, id); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      models.AuditDraftPosted,
		EntityType:  "content_draft",
		EntityID:    &id,
	})
	if s.events != nil {
		_ = s.events.Publish(ctx, events.StreamDraft, events.Event{
			Type: events.EventDraftStatusChanged,
			Payload: map[string]any{
				"draft_id": id.String(),
				"status":   models.DraftStatusPosted,
			},
		})
	}

	return s.draftRepo.GetByID(ctx, id)
}
