package logging

import (
	"context"
	"log/slog"

	"mesa-pacing/internal/core/domain"
)

// BidSurface implements port.BidSurface by logging each decision. It is
// used when no bid store is configured, for dry runs and local testing.
type BidSurface struct {
	logger *slog.Logger
}

// NewBidSurface returns a surface logging at info level.
func NewBidSurface(logger *slog.Logger) *BidSurface {
	return &BidSurface{logger: logger}
}

// ApplyDecision logs d and never fails.
func (s *BidSurface) ApplyDecision(ctx context.Context, d domain.Decision) error {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "pacing decision",
		slog.String("decision_id", d.ID),
		slog.Int64("campaign_id", d.CampaignID),
		slog.Float64("multiplier", d.Multiplier),
		slog.Float64("throttle", d.Throttle),
		slog.String("status", string(d.Status)),
		slog.String("reason", string(d.Reason)),
		slog.Float64("error", d.Error))
	return nil
}
