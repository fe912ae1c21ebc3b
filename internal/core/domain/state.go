package domain

import "time"

// PacingState is the mutable pacing state of one campaign for one budget
// period. It has a single owner: callers serialise access to it.
type PacingState struct {
	Config BudgetConfig

	SpendToDate int64
	LastEventAt time.Time
	Clicks      int64
	Conversions int64
	// Overshoot is spend reported beyond TotalBudget by late events.
	Overshoot int64

	Multiplier float64
	Throttle   float64
	Status     Status

	ConsecutiveAnomalies int
	// HoldUntil is the earliest time an anomaly hold may lift on its own.
	HoldUntil time.Time
	// ThrottleBeforeHold is restored when an anomaly hold lifts.
	ThrottleBeforeHold float64
	// StatusBeforeFault is the last good status when Status is ERROR.
	StatusBeforeFault Status

	RecentSpend *Ring[SpendSample]
	History     *Ring[Decision]
}

// NewPacingState returns fresh ACTIVE state for cfg. The multiplier is
// clamped into the config's bounds and the throttle into [0,1].
func NewPacingState(cfg BudgetConfig, multiplier, throttle float64, windowCap, historyCap int) *PacingState {
	return &PacingState{
		Config:      cfg,
		Multiplier:  Clamp(multiplier, cfg.MinMultiplier, cfg.MaxMultiplier),
		Throttle:    Clamp(throttle, 0, 1),
		Status:      StatusActive,
		RecentSpend: NewRing[SpendSample](windowCap),
		History:     NewRing[Decision](historyCap),
	}
}

// Clone returns a deep copy safe to read without the owner's lock.
func (s *PacingState) Clone() *PacingState {
	c := *s
	c.RecentSpend = s.RecentSpend.Clone()
	c.History = s.History.Clone()
	return &c
}

// ActualSpendFraction returns spend to date as a fraction of the budget.
func (s *PacingState) ActualSpendFraction() float64 {
	if s.Config.TotalBudget <= 0 {
		return 1
	}
	return float64(s.SpendToDate) / float64(s.Config.TotalBudget)
}

// Remaining returns the unspent budget, never below zero.
func (s *PacingState) Remaining() int64 {
	return max(s.Config.TotalBudget-s.SpendToDate, 0)
}

// ApplyEvent records ev: the sample enters the spend window (evicting the
// oldest one when full) and the aggregates are updated. Spend past the
// budget is recorded as overshoot.
func (s *PacingState) ApplyEvent(ev SpendEvent) {
	s.RecentSpend.Push(SpendSample{At: ev.Timestamp, Amount: ev.Amount})
	s.SpendToDate += ev.Amount
	if ev.Timestamp.After(s.LastEventAt) {
		s.LastEventAt = ev.Timestamp
	}
	if ev.Clicks != nil {
		s.Clicks += *ev.Clicks
	}
	if ev.Conversions != nil {
		s.Conversions += *ev.Conversions
	}
	if over := s.SpendToDate - s.Config.TotalBudget; over > 0 {
		s.Overshoot = over
	}
}

// HoldExpired reports whether an anomaly hold may lift at now.
func (s *PacingState) HoldExpired(now time.Time) bool {
	return s.ConsecutiveAnomalies == 0 && !now.Before(s.HoldUntil)
}

// Schedulable reports whether the scheduler should evaluate the campaign.
func (s *PacingState) Schedulable() bool {
	switch s.Status {
	case StatusActive, StatusPaused, StatusError:
		return true
	}
	return false
}
