package repositories

import (
	"context"
	"fmt"

	"github.com/contentstudio/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaidContentRepo struct {
	pool *pgxpool.Pool
}

func NewPaidContentRepo(pool *pgxpool.Pool) *PaidContentRepo {
	return &PaidContentRepo{pool: pool}
}

const paidContentColumns = `id, user_id, campaign_name, primary_goal, target_platform, audience_type,
	audience_characteristics, age_range, gender, location, language,
	budget_type, budget_amount, start_date, end_date, optimization_preference,
	content_idea, brand_tone, cta_objective, visual_style,
	generate_ad_copy, generate_headlines, generate_cta_text, generate_image_prompt, generate_video_hooks,
	number_of_variations, generated_ad_copy, generated_headlines, generated_cta_texts,
	generated_image_prompts, generated_video_hooks, generation_status, created_at`

func (r *PaidContentRepo) Create(ctx context.Context, p *models.PaidContent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO paid_content (user_id, campaign_name, primary_goal, target_platform, audience_type,
			audience_characteristics, age_range, gender, location, language,
			budget_type, budget_amount, start_date, end_date, optimization_preference,
			content_idea, brand_tone, cta_objective, visual_style,
			generate_ad_copy, generate_headlines, generate_cta_text, generate_image_prompt, generate_video_hooks,
			number_of_variations, generated_ad_copy, generated_headlines, generated_cta_texts,
			generated_image_prompts, generated_video_hooks, generation_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)
		RETURNING id, created_at
	`, p.UserID, p.CampaignName, p.PrimaryGoal, p.TargetPlatform, p.AudienceType,
		p.AudienceCharacteristics, p.AgeRange, p.Gender, p.Location, p.Language,
		p.BudgetType, p.BudgetAmount, p.StartDate, p.EndDate, p.OptimizationPreference,
		p.ContentIdea, p.BrandTone, p.CTAObjective, p.VisualStyle,
		p.GenerateAdCopy, p.GenerateHeadlines, p.GenerateCTAText, p.GenerateImagePrompt, p.GenerateVideoHooks,
		p.NumberOfVariations, p.GeneratedAdCopy, p.GeneratedHeadlines, p.GeneratedCTATexts,
		p.GeneratedImagePrompts, p.GeneratedVideoHooks, p.GenerationStatus,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PaidContentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PaidContent, error) {
	var p models.PaidContent
	err := r.pool.QueryRow(ctx,
		`SELECT `+paidContentColumns+` FROM paid_content WHERE id = $1`, id,
	).Scan(paidContentScanTargets(&p)...)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaidContentRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.PaidContent, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+paidContentColumns+` FROM paid_content
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list paid_content: %w", err)
	}
	defer rows.Close()

	var items []models.PaidContent
	for rows.Next() {
		var p models.PaidContent
		if err := rows.Scan(paidContentScanTargets(&p)...); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func paidContentScanTargets(p *models.PaidContent) []any {
	return []any{
		&p.ID, &p.UserID, &p.CampaignName, &p.PrimaryGoal, &p.TargetPlatform, &p.AudienceType,
		&p.AudienceCharacteristics, &p.AgeRange, &p.Gender, &p.Location, &p.Language,
		&p.BudgetType, &p.BudgetAmount, &p.StartDate, &p.EndDate, &p.OptimizationPreference,
		&p.ContentIdea, &p.BrandTone, &p.CTAObjective, &p.VisualStyle,
		&p.GenerateAdCopy, &p.GenerateHeadlines, &p.GenerateCTAText, &p.GenerateImagePrompt, &p.GenerateVideoHooks,
		&p.NumberOfVariations, &p.GeneratedAdCopy, &p.GeneratedHeadlines, &p.GeneratedCTATexts,
		&p.GeneratedImagePrompts, &p.GeneratedVideoHooks, &p.GenerationStatus, &p.CreatedAt,
	}
}
