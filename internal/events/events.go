package events

import "context"

// Stream carrying every draft lifecycle event.
const StreamDraft = "events:draft"

// Event types
const (
	EventDraftStatusChanged = "draft_status_changed"
	EventGenerationFailed   = "generation_failed"
	EventGenerationStalled  = "generation_stalled"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
