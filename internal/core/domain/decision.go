package domain

import "time"

// Status is the lifecycle state of a campaign's pacing within a period.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusExhausted Status = "EXHAUSTED"
	StatusError     Status = "ERROR"
)

// Reason explains why a decision has the values it has.
type Reason string

const (
	ReasonOnTarget        Reason = "ON_TARGET"
	ReasonOverspend       Reason = "OVERSPEND_CORRECTION"
	ReasonUnderspend      Reason = "UNDERSPEND_CORRECTION"
	ReasonBudgetExhausted Reason = "BUDGET_EXHAUSTED"
	ReasonAnomalyHold     Reason = "ANOMALY_HOLD"
)

// Decision is the output of one pacing evaluation: the fraction of bid
// opportunities to admit and the multiplier to apply to baseline bids.
// Decisions are never mutated after they are published.
type Decision struct {
	ID         string    `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	Timestamp  time.Time `json:"timestamp"`
	Multiplier float64   `json:"multiplier"`
	Throttle   float64   `json:"throttle"`
	Reason     Reason    `json:"reason"`
	Status     Status    `json:"status"`
	// Error is the signed pacing error (target minus actual spend fraction)
	// the decision was computed from.
	Error float64 `json:"error"`
}
