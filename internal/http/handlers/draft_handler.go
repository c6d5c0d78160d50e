package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/contentstudio/backend/internal/http/dto"
	"github.com/contentstudio/backend/internal/middleware"
	"github.com/contentstudio/backend/internal/models"
	"github.com/contentstudio/backend/internal/repositories"
	"github.com/contentstudio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DraftHandler struct {
	draftService *services.DraftService
	log          *zap.Logger
}

func NewDraftHandler(draftService *services.DraftService, log *zap.Logger) *DraftHandler {
	return &DraftHandler{draftService: draftService, log: log}
}

func (h *DraftHandler) CreateDraft(c *fiber.Ctx) error {
	var req dto.CreateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	if req.CampaignName == "" || req.Idea == "" || req.Platform == "" || req.Format == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "campaign_name, idea, platform, and format are required"})
	}

	draft := &models.ContentDraft{
		CampaignID:           req.CampaignID,
		CampaignName:         req.CampaignName,
		Idea:                 req.Idea,
		Platform:             req.Platform,
		Format:               req.Format,
		AssetSource:          req.AssetSource,
		AssetFileName:        req.AssetFileName,
		UserUploadedImageURL: req.UserUploadedImageURL,
		UserUploadedVideoURL: req.UserUploadedVideoURL,
	}

	userID := middleware.GetUserID(c)
	if err := h.draftService.Create(c.Context(), userID, draft); err != nil {
		h.log.Error("create draft failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: draft})
}

func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid draft id"})
	}

	userID := middleware.GetUserID(c)
	draft, err := h.draftService.GetByID(c.Context(), id, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "draft not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: draft})
}

// ListDrafts serves the content-history view: filter by campaign name
// substring, creation date range, and status.
func (h *DraftHandler) ListDrafts(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	filter := repositories.DraftFilter{
		CampaignName: c.Query("campaign_name"),
		Limit:        20,
	}

	if v := c.Query("status"); v != "" && v != "all" {
		filter.Status = &v
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid from date"})
		}
		filter.CreatedFrom = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid to date"})
		}
		filter.CreatedTo = &t
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	drafts, err := h.draftService.List(c.Context(), userID, filter)
	if err != nil {
		h.log.Error("list drafts failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: drafts})
}

// PostDraft forwards the selected draft to the posting workflow and
// advances it to posted.
func (h *DraftHandler) PostDraft(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid draft id"})
	}

	userID := middleware.GetUserID(c)
	draft, err := h.draftService.Post(c.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "draft not found"})
		}
		h.log.Error("post draft failed", zap.String("draft_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: draft})
}
