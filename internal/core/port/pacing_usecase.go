package port

import (
	"context"
	"time"

	"mesa-pacing/internal/core/domain"
)

// EventSink accepts spend events from an event source.
type EventSink interface {
	// Ingest applies ev to its campaign's pacing state. Rejections are
	// reported as ErrStaleEvent, ErrUnknownCampaign, ErrConfigMissing or
	// ErrInvalidEvent.
	Ingest(ctx context.Context, ev domain.SpendEvent) error
}

// PacingUseCase is the primary port used by the HTTP adapter and event
// sources. Mock implementations can be generated from this interface for
// testing.
type PacingUseCase interface {
	EventSink

	// ListCampaigns returns a view of every campaign with pacing state.
	ListCampaigns(ctx context.Context) ([]PacingView, error)
	// Pacing returns the current view of one campaign or ErrUnknownCampaign.
	Pacing(ctx context.Context, campaignID int64) (*PacingView, error)
	// Analyze returns a diagnostic analysis of one campaign's pacing.
	Analyze(ctx context.Context, campaignID int64) (*Analysis, error)
	// Resume lifts an anomaly hold. It returns ErrNotPaused when the
	// campaign is not on hold.
	Resume(ctx context.Context, campaignID int64) error
}

// PacingLoop is the port driven by the scheduler.
type PacingLoop interface {
	ConfigChangeHandler

	// Schedulable returns the IDs of campaigns due for evaluation.
	Schedulable() []int64
	// Evaluate runs the pacing engine for one campaign and publishes the
	// resulting decision. Faults are reported as ErrEngineFault.
	Evaluate(ctx context.Context, campaignID int64, now time.Time) (*domain.Decision, error)
	// ExpirePeriods evicts state whose budget period ended before now and
	// returns the affected campaign IDs.
	ExpirePeriods(now time.Time) []int64
	// DropExpiredPending drops buffered events whose config never arrived
	// and returns how many were dropped.
	DropExpiredPending(now time.Time) int
}

// PacingView is a read-only snapshot of a campaign's pacing state. It is a
// DTO used by the HTTP layer.
type PacingView struct {
	CampaignID           int64         `json:"campaign_id"`
	Status               domain.Status `json:"status"`
	PeriodStart          time.Time     `json:"period_start"`
	PeriodEnd            time.Time     `json:"period_end"`
	Curve                domain.Curve  `json:"curve"`
	TotalBudget          int64         `json:"total_budget"`
	SpendToDate          int64         `json:"spend_to_date"`
	Overshoot            int64         `json:"overshoot"`
	LastEventAt          time.Time     `json:"last_event_at"`
	Multiplier           float64       `json:"multiplier"`
	Throttle             float64       `json:"throttle"`
	ConsecutiveAnomalies int           `json:"consecutive_anomalies"`
	HoldUntil            *time.Time    `json:"hold_until,omitempty"`
}

// Analysis explains where a campaign stands against its target curve.
// Velocities are in budget units per hour.
type Analysis struct {
	PacingView

	ElapsedFraction     float64           `json:"elapsed_fraction"`
	TargetSpendFraction float64           `json:"target_spend_fraction"`
	ActualSpendFraction float64           `json:"actual_spend_fraction"`
	PacingError         float64           `json:"pacing_error"`
	ObservedVelocity    float64           `json:"observed_velocity"`
	ExpectedVelocity    float64           `json:"expected_velocity"`
	ProjectedSpend      int64             `json:"projected_spend"`
	Clicks              int64             `json:"clicks"`
	Conversions         int64             `json:"conversions"`
	CostPerConversion   *float64          `json:"cost_per_conversion,omitempty"`
	RecentDecisions     []domain.Decision `json:"recent_decisions"`
	Insights            []string          `json:"insights"`
}
