package dto

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// RelaySuccessResponse is the shape the automation layer expects back from
// the draft-processing hook. The generated fields are null when the
// upstream response did not carry them.
type RelaySuccessResponse struct {
	Success           bool    `json:"success"`
	DraftID           string  `json:"draft_id"`
	GeneratedText     *string `json:"generated_text"`
	GeneratedImageURL *string `json:"generated_image_url"`
	GeneratedVideoURL *string `json:"generated_video_url"`
}

type RelayErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
