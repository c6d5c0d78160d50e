package models

import (
	"time"

	"github.com/google/uuid"
)

// Paid content generation statuses
const (
	PaidContentStatusDraft     = "draft"
	PaidContentStatusCompleted = "completed"
)

// PaidContent is a paid-campaign brief plus the ad variations generated
// from it. Saved as a draft when the user wants to come back later, or as
// completed together with the generated variations.
type PaidContent struct {
	ID                      uuid.UUID  `json:"id"`
	UserID                  uuid.UUID  `json:"user_id"`
	CampaignName            string     `json:"campaign_name"`
	PrimaryGoal             string     `json:"primary_goal"`
	TargetPlatform          string     `json:"target_platform"`
	AudienceType            string     `json:"audience_type"`
	AudienceCharacteristics *string    `json:"audience_characteristics,omitempty"`
	AgeRange                *string    `json:"age_range,omitempty"`
	Gender                  *string    `json:"gender,omitempty"`
	Location                *string    `json:"location,omitempty"`
	Language                *string    `json:"language,omitempty"`
	BudgetType              string     `json:"budget_type"`
	BudgetAmount            *float64   `json:"budget_amount,omitempty"`
	StartDate               *time.Time `json:"start_date,omitempty"`
	EndDate                 *time.Time `json:"end_date,omitempty"`
	OptimizationPreference  string     `json:"optimization_preference"`
	ContentIdea             string     `json:"content_idea"`
	BrandTone               string     `json:"brand_tone"`
	CTAObjective            string     `json:"cta_objective"`
	VisualStyle             string     `json:"visual_style"`
	GenerateAdCopy          bool       `json:"generate_ad_copy"`
	GenerateHeadlines       bool       `json:"generate_headlines"`
	GenerateCTAText         bool       `json:"generate_cta_text"`
	GenerateImagePrompt     bool       `json:"generate_image_prompt"`
	GenerateVideoHooks      bool       `json:"generate_video_hooks"`
	NumberOfVariations      int        `json:"number_of_variations"`
	GeneratedAdCopy         []string   `json:"generated_ad_copy,omitempty"`
	GeneratedHeadlines      []string   `json:"generated_headlines,omitempty"`
	GeneratedCTATexts       []string   `json:"generated_cta_texts,omitempty"`
	GeneratedImagePrompts   []string   `json:"generated_image_prompts,omitempty"`
	GeneratedVideoHooks     []string   `json:"generated_video_hooks,omitempty"`
	GenerationStatus        string     `json:"generation_status"`
	CreatedAt               time.Time  `json:"created_at"`
}
