package port

import (
	"time"

	"mesa-pacing/internal/core/domain"
)

// Observer is the observability sink. Calls must not block.
type Observer interface {
	// DecisionPublished is called for every decision after it has been
	// applied to state.
	DecisionPublished(d domain.Decision)
	// AnomalyHold is called when a campaign enters an anomaly hold.
	AnomalyHold(d domain.Decision)
	// EngineFault is called when a campaign's evaluation fails.
	EngineFault(campaignID int64, err error)
	// EventRejected is called when an event is ignored or dropped.
	EventRejected(campaignID int64, err error)
	// DeliveryFailed is called when the bid surface rejects a decision.
	DeliveryFailed(d domain.Decision, err error)
	// CampaignRemoved is called when a campaign's pacing state is retired
	// or its period expires.
	CampaignRemoved(campaignID int64)
	// TickCompleted is called at the end of every scheduler tick.
	TickCompleted(r TickReport)
	// TickSkipped is called when a tick is due while the previous one is
	// still running.
	TickSkipped()
}

// TickReport summarises one scheduler tick.
type TickReport struct {
	Started   time.Time
	Duration  time.Duration
	Campaigns int
	Evaluated int
	Faulted   int
	Skipped   int
	Expired   int
	Dropped   int
}
