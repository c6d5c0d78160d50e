package models

import (
	"time"

	"github.com/google/uuid"
)

// Draft statuses
const (
	DraftStatusCreated   = "draft_created"
	DraftStatusGenerated = "content_generated"
	DraftStatusPosted    = "posted"
	DraftStatusFailed    = "failed"
)

// ContentDraft is one content-generation request tracked through its lifecycle.
// Generated fields are populated by the relay once the automation service
// responds; user-uploaded media comes from the dashboard directly.
type ContentDraft struct {
	ID                   uuid.UUID  `json:"id"`
	UserID               uuid.UUID  `json:"user_id"`
	CampaignID           string     `json:"campaign_id"`
	CampaignName         string     `json:"campaign_name"`
	Idea                 string     `json:"idea"`
	Platform             string     `json:"platform"`
	Format               string     `json:"format"`
	AssetSource          *string    `json:"asset_source,omitempty"`
	AssetFileName        *string    `json:"asset_file_name,omitempty"`
	GeneratedText        *string    `json:"generated_text,omitempty"`
	GeneratedImageURL    *string    `json:"generated_image_url,omitempty"`
	GeneratedVideoURL    *string    `json:"generated_video_url,omitempty"`
	UserUploadedImageURL *string    `json:"user_uploaded_image_url,omitempty"`
	UserUploadedVideoURL *string    `json:"user_uploaded_video_url,omitempty"`
	Status               string     `json:"status"`
	IsMediaReady         *bool      `json:"is_media_ready"`
	GeneratedAt          *time.Time `json:"generated_at,omitempty"`
	PostedAt             *time.Time `json:"posted_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// ValidDraftTransitions maps each status to the statuses reachable from it.
// The relay only ever performs draft_created -> content_generated; posting
// is a separate user action. failed is reachable from any non-terminal
// state but is never written by the relay itself.
var ValidDraftTransitions = map[string][]string{
	DraftStatusCreated:   {DraftStatusGenerated, DraftStatusFailed},
	DraftStatusGenerated: {DraftStatusPosted, DraftStatusFailed},
	DraftStatusPosted:    {},
	DraftStatusFailed:    {},
}

func IsValidDraftTransition(from, to string) bool {
	allowed, ok := ValidDraftTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// MediaURL returns the first renderable asset for the dashboard preview,
// user uploads taking precedence over generated media.
func (d *ContentDraft) MediaURL() string {
	for _, u := range []*string{d.UserUploadedImageURL, d.UserUploadedVideoURL, d.GeneratedImageURL, d.GeneratedVideoURL} {
		if u != nil && *u != "" {
			return *u
		}
	}
	return ""
}

func (d *ContentDraft) HasVideo() bool {
	return (d.UserUploadedVideoURL != nil && *d.UserUploadedVideoURL != "") ||
		(d.GeneratedVideoURL != nil && *d.GeneratedVideoURL != "")
}
