package handlers

import (
	"strconv"

	"github.com/contentstudio/backend/internal/http/dto"
	"github.com/contentstudio/backend/internal/middleware"
	"github.com/contentstudio/backend/internal/models"
	"github.com/contentstudio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PaidContentHandler struct {
	paidService *services.PaidContentService
	log         *zap.Logger
}

func NewPaidContentHandler(paidService *services.PaidContentService, log *zap.Logger) *PaidContentHandler {
	return &PaidContentHandler{paidService: paidService, log: log}
}

func (h *PaidContentHandler) Generate(c *fiber.Ctx) error {
	p, ok := h.parseBrief(c)
	if !ok {
		return nil
	}

	userID := middleware.GetUserID(c)
	if err := h.paidService.Generate(c.Context(), userID, p); err != nil {
		h.log.Error("paid content generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: p})
}

func (h *PaidContentHandler) SaveDraft(c *fiber.Ctx) error {
	p, ok := h.parseBrief(c)
	if !ok {
		return nil
	}

	userID := middleware.GetUserID(c)
	if err := h.paidService.SaveDraft(c.Context(), userID, p); err != nil {
		h.log.Error("paid content draft save failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: p})
}

func (h *PaidContentHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	limit, offset := 20, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	items, err := h.paidService.List(c.Context(), userID, limit, offset)
	if err != nil {
		h.log.Error("list paid content failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: items})
}

// parseBrief decodes and validates the request body, writing the error
// response itself when the brief is unusable.
func (h *PaidContentHandler) parseBrief(c *fiber.Ctx) (*models.PaidContent, bool) {
	var req dto.PaidContentRequest
	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
		return nil, false
	}

	if req.CampaignName == "" || req.ContentIdea == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "campaign_name and content_idea are required"})
		return nil, false
	}

	return &models.PaidContent{
		CampaignName:            req.CampaignName,
		PrimaryGoal:             req.PrimaryGoal,
		TargetPlatform:          req.TargetPlatform,
		AudienceType:            req.AudienceType,
		AudienceCharacteristics: req.AudienceCharacteristics,
		AgeRange:                req.AgeRange,
		Gender:                  req.Gender,
		Location:                req.Location,
		Language:                req.Language,
		BudgetType:              req.BudgetType,
		BudgetAmount:            req.BudgetAmount,
		StartDate:               req.StartDate,
		EndDate:                 req.EndDate,
		OptimizationPreference:  req.OptimizationPreference,
		ContentIdea:             req.ContentIdea,
		BrandTone:               req.BrandTone,
		CTAObjective:            req.CTAObjective,
		VisualStyle:             req.VisualStyle,
		GenerateAdCopy:          req.GenerateAdCopy,
		GenerateHeadlines:       req.GenerateHeadlines,
		GenerateCTAText:         req.GenerateCTAText,
		GenerateImagePrompt:     req.GenerateImagePrompt,
		GenerateVideoHooks:      req.GenerateVideoHooks,
		NumberOfVariations:      req.NumberOfVariations,
	}, true
}
