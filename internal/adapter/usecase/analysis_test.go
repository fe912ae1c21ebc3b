package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.quiet()
	f.sync(t, testConfig(1))

	conversions := int64(3)
	ev := spend(1, f.now.Add(-30*time.Second), 300)
	ev.Conversions = &conversions
	require.NoError(t, f.uc.Ingest(ctx, ev))
	_, err := f.uc.Evaluate(ctx, 1, f.now)
	require.NoError(t, err)

	a, err := f.uc.Analyze(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, a.ElapsedFraction, 1e-9)
	assert.InDelta(t, 0.5, a.TargetSpendFraction, 1e-9)
	assert.InDelta(t, 0.3, a.ActualSpendFraction, 1e-9)
	assert.InDelta(t, 0.2, a.PacingError, 1e-9)
	assert.Equal(t, int64(600), a.ProjectedSpend)
	assert.InDelta(t, 300*60.0, a.ObservedVelocity, 1e-6)
	assert.InDelta(t, 1000/24.0, a.ExpectedVelocity, 1e-6)
	require.NotNil(t, a.CostPerConversion)
	assert.InDelta(t, 100, *a.CostPerConversion, 1e-9)
	require.Len(t, a.RecentDecisions, 1)
	assert.Equal(t, domain.ReasonUnderspend, a.RecentDecisions[0].Reason)
	assert.Contains(t, a.Insights, "Underspending: 20.0% behind the target curve.")
	assert.Contains(t, a.Insights, "Recent spend velocity is 432.0x the expected rate.")
}

func TestAnalyzeExhausted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.quiet()
	f.sync(t, testConfig(1))
	require.NoError(t, f.uc.Ingest(ctx, spend(1, f.now.Add(-time.Hour), 1200)))
	_, err := f.uc.Evaluate(ctx, 1, f.now)
	require.NoError(t, err)

	a, err := f.uc.Analyze(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExhausted, a.Status)
	assert.Equal(t, int64(200), a.Overshoot)
	assert.Equal(t, []string{
		"Budget exhausted; delivery is stopped until the next period.",
		"Late events overshot the budget by 200.",
	}, a.Insights)
}

func TestListCampaignsAndPacing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.quiet()
	f.sync(t, testConfig(2), testConfig(1))

	views, err := f.uc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].CampaignID)
	assert.Equal(t, int64(2), views[1].CampaignID)
	assert.Nil(t, views[0].HoldUntil)

	_, err = f.uc.Pacing(ctx, 3)
	assert.ErrorIs(t, err, port.ErrUnknownCampaign)
	_, err = f.uc.Analyze(ctx, 3)
	assert.ErrorIs(t, err, port.ErrUnknownCampaign)
}
