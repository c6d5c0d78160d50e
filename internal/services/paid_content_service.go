package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/contentstudio/backend/internal/models"
	"github.com/contentstudio/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaidContentService struct {
	paidRepo  *repositories.PaidContentRepo
	auditRepo *repositories.AuditRepo
	log       *zap.Logger
}

func NewPaidContentService(
	paidRepo *repositories.PaidContentRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *PaidContentService {
	return &PaidContentService{
		paidRepo:  paidRepo,
		auditRepo: auditRepo,
		log:       log,
	}
}

// Generate fills the requested variation sets from the campaign brief and
// persists the record as completed.
func (s *PaidContentService) Generate(ctx context.Context, userID uuid.UUID, p *models.PaidContent) error {
	p.UserID = userID
	if p.NumberOfVariations <= 0 {
		p.NumberOfVariations = 1
	}

	if p.GenerateAdCopy {
		p.GeneratedAdCopy = adCopyVariations(p)
	}
	if p.GenerateHeadlines {
		p.GeneratedHeadlines = headlineVariations(p)
	}
	if p.GenerateCTAText {
		p.GeneratedCTATexts = ctaVariations(p)
	}
	if p.GenerateImagePrompt {
		p.GeneratedImagePrompts = imagePromptVariations(p)
	}
	if p.GenerateVideoHooks {
		p.GeneratedVideoHooks = videoHookVariations(p)
	}
	p.GenerationStatus = models.PaidContentStatusCompleted

	if err := s.paidRepo.Create(ctx, p); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      models.AuditPaidContentGenerated,
		EntityType:  "paid_content",
		EntityID:    &p.ID,
	})

	return nil
}

// SaveDraft persists the brief without generating anything.
func (s *PaidContentService) SaveDraft(ctx context.Context, userID uuid.UUID, p *models.PaidContent) error {
	p.UserID = userID
	if p.NumberOfVariations <= 0 {
		p.NumberOfVariations = 1
	}
	p.GenerationStatus = models.PaidContentStatusDraft
	return s.paidRepo.Create(ctx, p)
}

func (s *PaidContentService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.PaidContent, error) {
	return s.paidRepo.ListByUser(ctx, userID, limit, offset)
}

func adCopyVariations(p *models.PaidContent) []string {
	out := make([]string, p.NumberOfVariations)
	for i := range out {
		out[i] = fmt.Sprintf(
			"%s - Transform your business with our innovative solution. Perfect for %s audiences looking to achieve %s. %s tone with compelling results. Variation %d.",
			p.ContentIdea, strings.ToLower(p.AudienceType), strings.ToLower(p.PrimaryGoal), p.BrandTone, i+1,
		)
	}
	return out
}

func headlineVariations(p *models.PaidContent) []string {
	words := strings.Fields(p.ContentIdea)
	if len(words) > 5 {
		words = words[:5]
	}
	lead := strings.Join(words, " ")

	out := make([]string, p.NumberOfVariations)
	for i := range out {
		if i == 0 {
			out[i] = fmt.Sprintf("%s: %s", p.PrimaryGoal, lead)
		} else {
			out[i] = fmt.Sprintf("%s: %s (%d)", p.PrimaryGoal, lead, i+1)
		}
	}
	return out
}

func ctaVariations(p *models.PaidContent) []string {
	out := make([]string, p.NumberOfVariations)
	for i := range out {
		if i == 0 {
			out[i] = p.CTAObjective
		} else {
			out[i] = p.CTAObjective + " Today"
		}
	}
	return out
}

func imagePromptVariations(p *models.PaidContent) []string {
	out := make([]string, p.NumberOfVariations)
	for i := range out {
		out[i] = fmt.Sprintf(
			"%s visual: %s. %s aesthetic, optimized for %s advertising. High-quality, attention-grabbing imagery. Version %d.",
			p.VisualStyle, p.ContentIdea, p.BrandTone, p.TargetPlatform, i+1,
		)
	}
	return out
}

func videoHookVariations(p *models.PaidContent) []string {
	out := make([]string, p.NumberOfVariations)
	for i := range out {
		out[i] = fmt.Sprintf(
			"Hook %d: Start with a bold statement about %s. %s. End with clear CTA: %s. Duration: 15-30 seconds.",
			i+1, strings.ToLower(p.PrimaryGoal), p.ContentIdea, p.CTAObjective,
		)
	}
	return out
}
