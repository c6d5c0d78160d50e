package handlers

import (
	"encoding/json"
	"errors"

	"github.com/contentstudio/backend/internal/http/dto"
	"github.com/contentstudio/backend/internal/repositories"
	"github.com/contentstudio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RelayHandler is the boundary for the draft-processing hook. It is called
// by the store's automation layer, not by dashboard users, so it lives
// outside the authenticated API and answers CORS preflights itself.
type RelayHandler struct {
	relay *services.RelayService
	log   *zap.Logger
}

func NewRelayHandler(relay *services.RelayService, log *zap.Logger) *RelayHandler {
	return &RelayHandler{relay: relay, log: log}
}

// The automation layer sends browser-originated preflights; every response
// from this hook carries these headers, success or failure.
func setRelayCORSHeaders(c *fiber.Ctx) {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")
}

// Preflight answers OPTIONS immediately: 200, no body, before any business
// logic runs.
func (h *RelayHandler) Preflight(c *fiber.Ctx) error {
	setRelayCORSHeaders(c)
	// Not SendStatus: that would fill the empty body with the status text.
	return c.Status(fiber.StatusOK).Send(nil)
}

// ProcessContentDraft runs the relay pipeline for one submission. Every
// pipeline error surfaces here exactly once, is logged with context, and
// becomes the uniform {success:false, error} shape with status 500.
func (h *RelayHandler) ProcessContentDraft(c *fiber.Ctx) error {
	setRelayCORSHeaders(c)

	var payload map[string]any
	if err := json.Unmarshal(c.Body(), &payload); err != nil || payload == nil {
		return h.fail(c, errors.New("invalid JSON payload"))
	}

	result, err := h.relay.ProcessDraft(c.Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(dto.RelaySuccessResponse{
		Success:           true,
		DraftID:           result.DraftID.String(),
		GeneratedText:     nilIfEmpty(result.Text),
		GeneratedImageURL: nilIfEmpty(result.ImageURL),
		GeneratedVideoURL: nilIfEmpty(result.VideoURL),
	})
}

func (h *RelayHandler) fail(c *fiber.Ctx, err error) error {
	var (
		valErr    *services.ValidationError
		transport *services.TransportError
		upstream  *services.UpstreamError
	)
	switch {
	case errors.As(err, &valErr):
		h.log.Warn("draft processing rejected", zap.Error(err))
	case errors.As(err, &transport):
		h.log.Error("generation webhook unreachable", zap.Error(err))
	case errors.As(err, &upstream):
		h.log.Error("generation webhook failed", zap.Int("status", upstream.Status), zap.Error(err))
	case errors.Is(err, repositories.ErrDraftNotFound):
		h.log.Error("generation result had no matching draft", zap.Error(err))
	default:
		h.log.Error("draft processing failed", zap.Error(err))
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.RelayErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
