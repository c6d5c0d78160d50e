package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/contentstudio/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDraftNotFound is returned when a write or read matches no draft row.
var ErrDraftNotFound = errors.New("draft not found")

const draftColumns = `id, user_id, campaign_id, campaign_name, idea, platform, format,
	asset_source, asset_file_name, generated_text, generated_image_url, generated_video_url,
	user_uploaded_image_url, user_uploaded_video_url, status, is_media_ready,
	generated_at, posted_at, created_at`

type DraftRepo struct {
	pool *pgxpool.Pool
}

func NewDraftRepo(pool *pgxpool.Pool) *DraftRepo {
	return &DraftRepo{pool: pool}
}

func (r *DraftRepo) Create(ctx context.Context, d *models.ContentDraft) error {
	if d.Status == "" {
		d.Status = models.DraftStatusCreated
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO content_drafts (user_id, campaign_id, campaign_name, idea, platform, format,
			asset_source, asset_file_name, user_uploaded_image_url, user_uploaded_video_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`, d.UserID, d.CampaignID, d.CampaignName, d.Idea, d.Platform, d.Format,
		d.AssetSource, d.AssetFileName, d.UserUploadedImageURL, d.UserUploadedVideoURL, d.Status,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *DraftRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ContentDraft, error) {
	var d models.ContentDraft
	err := r.pool.QueryRow(ctx,
		`SELECT `+draftColumns+` FROM content_drafts WHERE id = $1`, id,
	).Scan(draftScanTargets(&d)...)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type DraftFilter struct {
	UserID       *uuid.UUID
	CampaignName string // substring match, case-insensitive
	Status       *string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	Limit        int
	Offset       int
}

func (r *DraftRepo) List(ctx context.Context, f DraftFilter) ([]models.ContentDraft, error) {
	query := `SELECT ` + draftColumns + ` FROM content_drafts`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.UserID != nil {
		where = append(where, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *f.UserID)
		argIdx++
	}
	if f.CampaignName != "" {
		where = append(where, fmt.Sprintf("campaign_name ILIKE $%d", argIdx))
		args = append(args, "%"+f.CampaignName+"%")
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.CreatedFrom != nil {
		where = append(where, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *f.CreatedFrom)
		argIdx++
	}
	if f.CreatedTo != nil {
		where = append(where, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *f.CreatedTo)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []models.ContentDraft
	for rows.Next() {
		var d models.ContentDraft
		if err := rows.Scan(draftScanTargets(&d)...); err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// GeneratedContent carries the fields extracted from an upstream generation
// response. Empty string means the field was absent upstream and must not
// be touched in the store.
type GeneratedContent struct {
	Text     string
	ImageURL string
	VideoURL string
}

func (g GeneratedContent) HasMedia() bool {
	return g.ImageURL != "" || g.VideoURL != ""
}

// ApplyGeneration commits a generation result: status becomes
// content_generated, generated_at is stamped, and each generated field is
// written only when present. is_media_ready flips true when an image or a
// video landed; it is never reset here. The whole update is a single
// conditional write on the draft id.
func (r *DraftRepo) ApplyGeneration(ctx context.Context, id uuid.UUID, gen GeneratedContent) error {
	set := []string{"status = $1", "generated_at = $2"}
	args := []any{models.DraftStatusGenerated, time.Now().UTC()}
	argIdx := 3

	if gen.Text != "" {
		set = append(set, fmt.Sprintf("generated_text = $%d", argIdx))
		args = append(args, gen.Text)
		argIdx++
	}
	if gen.ImageURL != "" {
		set = append(set, fmt.Sprintf("generated_image_url = $%d", argIdx))
		args = append(args, gen.ImageURL)
		argIdx++
	}
	if gen.VideoURL != "" {
		set = append(set, fmt.Sprintf("generated_video_url = $%d", argIdx))
		args = append(args, gen.VideoURL)
		argIdx++
	}
	if gen.HasMedia() {
		set = append(set, "is_media_ready = true")
	}

	query := fmt.Sprintf("UPDATE content_drafts SET %s WHERE id = $%d", strings.Join(set, ", "), argIdx)
	args = append(args, id)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update content_drafts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}
	return nil
}

// MarkPosted stamps the posted transition. Guarded by status so a stale
// client cannot post a draft twice or post one that never generated.
func (r *DraftRepo) MarkPosted(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE content_drafts SET status = $1, posted_at = now()
		WHERE id = $2 AND status = $3
	`, models.DraftStatusPosted, id, models.DraftStatusGenerated)
	if err != nil {
		return fmt.Errorf("update content_drafts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}
	return nil
}

// ListStale returns drafts still in draft_created older than the cutoff.
// Used by the worker sweep to surface generations that never came back.
func (r *DraftRepo) ListStale(ctx context.Context, olderThan time.Time, limit int) ([]models.ContentDraft, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+draftColumns+` FROM content_drafts
		 WHERE status = $1 AND created_at < $2
		 ORDER BY created_at ASC LIMIT $3`,
		models.DraftStatusCreated, olderThan, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []models.ContentDraft
	for rows.Next() {
		var d models.ContentDraft
		if err := rows.Scan(draftScanTargets(&d)...); err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

func draftScanTargets(d *models.ContentDraft) []any {
	return []any{
		&d.ID, &d.UserID, &d.CampaignID, &d.CampaignName, &d.Idea, &d.Platform, &d.Format,
		&d.AssetSource, &d.AssetFileName, &d.GeneratedText, &d.GeneratedImageURL, &d.GeneratedVideoURL,
		&d.UserUploadedImageURL, &d.UserUploadedVideoURL, &d.Status, &d.IsMediaReady,
		&d.GeneratedAt, &d.PostedAt, &d.CreatedAt,
	}
}
