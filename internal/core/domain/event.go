package domain

import (
	"time"
)

// SpendEvent is a spend or performance report for a campaign. Amount is in
// the same integer units as the campaign budget. Clicks and Conversions are
// optional performance counters.
type SpendEvent struct {
	CampaignID  int64     `json:"campaign_id"`
	Timestamp   time.Time `json:"timestamp"`
	Amount      int64     `json:"amount"`
	Clicks      *int64    `json:"clicks,omitempty"`
	Conversions *int64    `json:"conversions,omitempty"`
}

// SpendSample is the aggregate kept for velocity estimation once an event
// has been applied.
type SpendSample struct {
	At     time.Time
	Amount int64
}
