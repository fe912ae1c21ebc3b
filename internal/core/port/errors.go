package port

import "errors"

var (
	// ErrStaleEvent is returned for events outside the campaign's current
	// budget period. Such events are ignored and counted.
	ErrStaleEvent = errors.New("event outside current budget period")
	// ErrUnknownCampaign is returned for campaigns without pacing state that
	// the configuration store has retired.
	ErrUnknownCampaign = errors.New("unknown campaign")
	// ErrConfigMissing is returned when an event arrives for a campaign whose
	// budget config has not been seen yet. The event is held for a grace
	// period and dropped if no config arrives.
	ErrConfigMissing = errors.New("budget config missing")
	// ErrInvalidEvent is returned for malformed events.
	ErrInvalidEvent = errors.New("invalid event")
	// ErrEngineFault marks an evaluation that failed unexpectedly. The
	// campaign is put in ERROR and retried on the next tick.
	ErrEngineFault = errors.New("pacing engine fault")
	// ErrEvaluationInFlight is returned when a campaign's previous
	// evaluation has not finished yet.
	ErrEvaluationInFlight = errors.New("evaluation already in flight")
	// ErrNotPaused is returned when resuming a campaign that is not on hold.
	ErrNotPaused = errors.New("campaign is not paused")
)
