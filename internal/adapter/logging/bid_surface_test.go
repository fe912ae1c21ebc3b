package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
)

func TestBidSurfaceLogsDecision(t *testing.T) {
	var buf bytes.Buffer
	s := NewBidSurface(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, s.ApplyDecision(context.Background(), domain.Decision{
		ID:         "d-9",
		CampaignID: 9,
		Multiplier: 0.9,
		Throttle:   0.8,
		Reason:     domain.ReasonOverspend,
		Status:     domain.StatusActive,
	}))
	out := buf.String()
	assert.Contains(t, out, "decision_id=d-9")
	assert.Contains(t, out, "campaign_id=9")
	assert.Contains(t, out, "reason=OVERSPEND_CORRECTION")
}
