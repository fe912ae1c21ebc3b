package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() BudgetConfig {
	start := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	return BudgetConfig{
		CampaignID:    7,
		PeriodStart:   start,
		PeriodEnd:     start.Add(24 * time.Hour),
		TotalBudget:   1000,
		Curve:         LinearCurve(),
		MinMultiplier: 0.5,
		MaxMultiplier: 2,
	}
}

func TestBudgetConfigValidate(t *testing.T) {
	assert.NoError(t, testConfig().Validate())

	mutate := []func(*BudgetConfig){
		func(c *BudgetConfig) { c.CampaignID = 0 },
		func(c *BudgetConfig) { c.PeriodEnd = c.PeriodStart },
		func(c *BudgetConfig) { c.TotalBudget = 0 },
		func(c *BudgetConfig) { c.MinMultiplier = 0 },
		func(c *BudgetConfig) { c.MaxMultiplier = 0.4 },
		func(c *BudgetConfig) { c.Curve = Curve{Kind: CurveCustom} },
	}
	for i, m := range mutate {
		cfg := testConfig()
		m(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "mutation %d", i)
	}
}

func TestBudgetConfigPeriod(t *testing.T) {
	cfg := testConfig()

	assert.True(t, cfg.Contains(cfg.PeriodStart))
	assert.False(t, cfg.Contains(cfg.PeriodEnd))
	assert.False(t, cfg.Contains(cfg.PeriodStart.Add(-time.Nanosecond)))

	assert.Equal(t, 0.0, cfg.ElapsedFraction(cfg.PeriodStart.Add(-time.Hour)))
	assert.InDelta(t, 0.5, cfg.ElapsedFraction(cfg.PeriodStart.Add(12*time.Hour)), 1e-12)
	assert.Equal(t, 1.0, cfg.ElapsedFraction(cfg.PeriodEnd.Add(time.Hour)))
}

func TestBudgetConfigEqual(t *testing.T) {
	a, b := testConfig(), testConfig()
	assert.True(t, a.Equal(b))

	b.Curve = Curve{Kind: CurveCustom, Points: []CurvePoint{{0.5, 0.5}}}
	assert.False(t, a.Equal(b))

	b = testConfig()
	b.PeriodStart = b.PeriodStart.In(time.FixedZone("X", 3600))
	assert.True(t, a.Equal(b), "same instant in another zone")
}
