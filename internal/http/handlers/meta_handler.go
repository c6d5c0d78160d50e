package handlers

import (
	"github.com/contentstudio/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var predefinedPlatforms = []MetaOption{
	{ID: "facebook", Label: "Facebook"},
	{ID: "instagram", Label: "Instagram"},
	{ID: "linkedin", Label: "LinkedIn"},
	{ID: "tiktok", Label: "TikTok"},
	{ID: "youtube", Label: "YouTube"},
	{ID: "x", Label: "X (Twitter)"},
	{ID: "pinterest", Label: "Pinterest"},
}

var predefinedFormats = []MetaOption{
	{ID: "post", Label: "Post"},
	{ID: "story", Label: "Story"},
	{ID: "reel", Label: "Reel"},
	{ID: "carousel", Label: "Carousel"},
	{ID: "video", Label: "Video"},
	{ID: "short", Label: "Short"},
}

func (h *MetaHandler) GetPlatforms(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedPlatforms})
}

func (h *MetaHandler) GetFormats(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedFormats})
}
