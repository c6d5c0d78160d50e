package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditDraftCreated         = "draft_created"
	AuditDraftGenerated       = "draft_generated"
	AuditDraftPosted          = "draft_posted"
	AuditGenerationFailed     = "generation_failed"
	AuditPaidContentGenerated = "paid_content_generated"
	AuditUserSignedUp         = "user_signed_up"
)

type AuditLog struct {
	ID          uuid.UUID  `json:"id"`
	ActorUserID *uuid.UUID `json:"actor_user_id,omitempty"`
	ActorType   string     `json:"actor_type"` // user/system/relay
	Action      string     `json:"action"`
	EntityType  string     `json:"entity_type"`
	EntityID    *uuid.UUID `json:"entity_id,omitempty"`
	Meta        any        `json:"meta,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
