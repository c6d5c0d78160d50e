package dto

import "time"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateDraftRequest struct {
	CampaignID           string  `json:"campaign_id"`
	CampaignName         string  `json:"campaign_name"`
	Idea                 string  `json:"idea"`
	Platform             string  `json:"platform"`
	Format               string  `json:"format"`
	AssetSource          *string `json:"asset_source,omitempty"`
	AssetFileName        *string `json:"asset_file_name,omitempty"`
	UserUploadedImageURL *string `json:"user_uploaded_image_url,omitempty"`
	UserUploadedVideoURL *string `json:"user_uploaded_video_url,omitempty"`
}

type PaidContentRequest struct {
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
}
