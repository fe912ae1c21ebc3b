package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a budget configuration cannot be paced.
var ErrInvalidConfig = errors.New("invalid budget config")

// BudgetConfig is the pacing configuration of a campaign for a single budget
// period. Budgets are stored in integer units (e.g. cents). A config is
// immutable for the lifetime of its period; a new period arrives as a new
// config with a later PeriodStart.
type BudgetConfig struct {
	CampaignID    int64     `json:"campaign_id" yaml:"campaign_id"`
	PeriodStart   time.Time `json:"period_start" yaml:"period_start"`
	PeriodEnd     time.Time `json:"period_end" yaml:"period_end"`
	TotalBudget   int64     `json:"total_budget" yaml:"total_budget"`
	Curve         Curve     `json:"curve" yaml:"curve"`
	MinMultiplier float64   `json:"min_multiplier" yaml:"min_multiplier"`
	MaxMultiplier float64   `json:"max_multiplier" yaml:"max_multiplier"`
}

// Validate reports whether the config describes a pace-able period.
func (c BudgetConfig) Validate() error {
	switch {
	case c.CampaignID <= 0:
		return fmt.Errorf("%w: campaign id must be positive", ErrInvalidConfig)
	case !c.PeriodEnd.After(c.PeriodStart):
		return fmt.Errorf("%w: campaign %d: period end must be after period start", ErrInvalidConfig, c.CampaignID)
	case c.TotalBudget <= 0:
		return fmt.Errorf("%w: campaign %d: total budget must be positive", ErrInvalidConfig, c.CampaignID)
	case c.MinMultiplier <= 0 || c.MaxMultiplier < c.MinMultiplier:
		return fmt.Errorf("%w: campaign %d: multiplier bounds [%g, %g]", ErrInvalidConfig, c.CampaignID, c.MinMultiplier, c.MaxMultiplier)
	}
	if err := c.Curve.Validate(); err != nil {
		return fmt.Errorf("campaign %d: %w", c.CampaignID, err)
	}
	return nil
}

// PeriodDuration returns the length of the budget period.
func (c BudgetConfig) PeriodDuration() time.Duration {
	return c.PeriodEnd.Sub(c.PeriodStart)
}

// Contains reports whether ts falls inside the half-open period [start, end).
func (c BudgetConfig) Contains(ts time.Time) bool {
	return !ts.Before(c.PeriodStart) && ts.Before(c.PeriodEnd)
}

// ElapsedFraction returns how much of the period has passed at now, clamped
// to [0,1].
func (c BudgetConfig) ElapsedFraction(now time.Time) float64 {
	d := c.PeriodDuration()
	if d <= 0 {
		return 1
	}
	return Clamp(float64(now.Sub(c.PeriodStart))/float64(d), 0, 1)
}

// Equal reports whether two configs describe the same period and limits.
func (c BudgetConfig) Equal(o BudgetConfig) bool {
	return c.CampaignID == o.CampaignID &&
		c.PeriodStart.Equal(o.PeriodStart) &&
		c.PeriodEnd.Equal(o.PeriodEnd) &&
		c.TotalBudget == o.TotalBudget &&
		c.MinMultiplier == o.MinMultiplier &&
		c.MaxMultiplier == o.MaxMultiplier &&
		c.Curve.Equal(o.Curve)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
