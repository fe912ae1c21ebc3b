package file

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port/mocks"
)

const budgets = `
campaigns:
  - campaign_id: 1
    period_start: 2026-10-17T00:00:00Z
    period_end: 2026-10-18T00:00:00Z
    total_budget: 1000
    curve: {kind: front_loaded}
    min_multiplier: 0.5
    max_multiplier: 2
  - campaign_id: 1
    period_start: 2026-10-18T00:00:00Z
    period_end: 2026-10-19T00:00:00Z
    total_budget: 2000
    min_multiplier: 0.5
    max_multiplier: 2
  - campaign_id: 2
    period_start: 2026-10-17T00:00:00+03:00
    period_end: 2026-10-17T23:00:00+03:00
    total_budget: 500
    curve:
      kind: CUSTOM
      points:
        - {period: 0.5, budget: 0.7}
    min_multiplier: 1
    max_multiplier: 1.5
  - campaign_id: 3
    period_start: 2026-10-17T00:00:00Z
    period_end: 2026-10-18T00:00:00Z
    total_budget: -1
    min_multiplier: 1
    max_multiplier: 1
`

func writeBudgets(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budgets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigStore(t *testing.T) {
	ctx := context.Background()
	s := NewConfigStore(writeBudgets(t, budgets))
	s.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

	err := s.Load()
	assert.ErrorIs(t, err, domain.ErrInvalidConfig, "campaign 3 has a negative budget")

	active, err := s.GetActiveCampaignConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, domain.CurveFrontLoaded, active[0].Curve.Kind)
	assert.Equal(t, int64(1000), active[0].TotalBudget)
	assert.Equal(t, time.Date(2026, 10, 16, 21, 0, 0, 0, time.UTC), active[1].PeriodStart)

	cfg, err := s.GetCampaignConfig(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []domain.CurvePoint{{Period: 0.5, Budget: 0.7}}, cfg.Curve.Points)

	cfg, err = s.GetCampaignConfig(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	// The next day's period takes over for campaign 1.
	s.now = func() time.Time { return time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC) }
	cfg, err = s.GetCampaignConfig(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, int64(2000), cfg.TotalBudget)
	assert.Equal(t, domain.CurveLinear, cfg.Curve.Kind)
}

func TestConfigStoreKeepsBudgetsOnParseError(t *testing.T) {
	path := writeBudgets(t, budgets)
	s := NewConfigStore(path)
	s.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }
	_ = s.Load()

	require.NoError(t, os.WriteFile(path, []byte("campaigns: [oops"), 0o600))
	assert.Error(t, s.Load())

	active, err := s.GetActiveCampaignConfigs(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestParseRejectsDuplicatePeriods(t *testing.T) {
	got, err := parse([]byte(`
campaigns:
  - {campaign_id: 4, period_start: 2026-10-17T00:00:00Z, period_end: 2026-10-18T00:00:00Z, total_budget: 1, min_multiplier: 1, max_multiplier: 1}
  - {campaign_id: 4, period_start: 2026-10-17T00:00:00Z, period_end: 2026-10-19T00:00:00Z, total_budget: 1, min_multiplier: 1, max_multiplier: 1}
`))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Len(t, got, 1)
}

func TestWatcherSyncsOnChange(t *testing.T) {
	path := writeBudgets(t, "campaigns: []\n")
	s := NewConfigStore(path)
	s.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, s.Load())

	synced := make(chan struct{}, 1)
	h := mocks.NewMockConfigChangeHandler(t)
	h.EXPECT().SyncConfigs(mock.Anything).RunAndReturn(func(context.Context) error {
		select {
		case synced <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	w := NewWatcher(s, 10*time.Millisecond, slog.New(slog.DiscardHandler))
	go func() { done <- w.Watch(ctx, h) }()

	// The watch is registered asynchronously, so keep touching the file
	// until a sync lands.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(budgets), 0o600)
		select {
		case <-synced:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	// A reload may still be pending for one of the writes above.
	assert.Eventually(t, func() bool {
		active, err := s.GetActiveCampaignConfigs(context.Background())
		return err == nil && len(active) == 2
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
