package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contentstudio/backend/internal/config"
	"github.com/contentstudio/backend/internal/db"
	"github.com/contentstudio/backend/internal/events"
	"github.com/contentstudio/backend/internal/repositories"
	"go.uber.org/zap"
)

// The worker surfaces drafts whose generation never came back: the relay
// leaves a failed draft in draft_created, so without this sweep a stuck
// draft is indistinguishable from one not yet attempted. The sweep logs
// and publishes events only; it never mutates draft status.
func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	draftRepo := repositories.NewDraftRepo(pool)
	publisher := events.NewRedisPublisher(rdb, log)

	log.Info("worker started",
		zap.Duration("sweep_interval", cfg.SweepInterval),
		zap.Duration("stale_draft_age", cfg.StaleDraftAge),
	)

	sweepTicker := time.NewTicker(cfg.SweepInterval)
	defer sweepTicker.Stop()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sweepTicker.C:
			sweepStaleDrafts(ctx, cfg, draftRepo, publisher, log)
		}
	}
}

func sweepStaleDrafts(
	ctx context.Context,
	cfg *config.Config,
	draftRepo *repositories.DraftRepo,
	publisher events.Publisher,
	log *zap.Logger,
) {
	cutoff := time.Now().Add(-cfg.StaleDraftAge)

	stale, err := draftRepo.ListStale(ctx, cutoff, 100)
	if err != nil {
		log.Error("stale draft sweep failed", zap.Error(err))
		return
	}

	for _, d := range stale {
		log.Warn("draft stuck awaiting generation",
			zap.String("draft_id", d.ID.String()),
			zap.String("campaign_name", d.CampaignName),
			zap.Time("created_at", d.CreatedAt),
		)
		_ = publisher.Publish(ctx, events.StreamDraft, events.Event{
			Type: events.EventGenerationStalled,
			Payload: map[string]any{
				"draft_id":   d.ID.String(),
				"created_at": d.CreatedAt.Format(time.RFC3339),
			},
		})
	}

	if len(stale) > 0 {
		log.Info("stale draft sweep finished", zap.Int("count", len(stale)))
	}
}
