package usecase

import (
	"fmt"
	"math"
	"time"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// EngineParams tunes the pacing controller.
type EngineParams struct {
	// DeadBand is the absolute pacing error within which no correction is
	// applied.
	DeadBand float64
	// Gain and MaxStep drive the multiplier: delta = clamp(Gain*err, ±MaxStep).
	Gain    float64
	MaxStep float64
	// ThrottleGain and ThrottleMaxStep drive the throttle independently of
	// the multiplier.
	ThrottleGain    float64
	ThrottleMaxStep float64

	// AnomalyWindow is the span of recent spend used to estimate velocity.
	AnomalyWindow time.Duration
	// AnomalyMultiple is how many times the expected velocity counts as an
	// anomaly.
	AnomalyMultiple float64
	// AnomalyThreshold is the number of consecutive anomalous ticks that
	// triggers a hold.
	AnomalyThreshold int
	// AnomalyHold is the minimum duration of a hold.
	AnomalyHold time.Duration
	// SlopeFloor is the minimum curve slope used for the expected velocity,
	// so flat curve segments do not turn any spend into an anomaly.
	SlopeFloor float64
}

// DefaultEngineParams returns the controller defaults.
func DefaultEngineParams() EngineParams {
	return EngineParams{
		DeadBand:         0.02,
		Gain:             0.5,
		MaxStep:          0.10,
		ThrottleGain:     2.0,
		ThrottleMaxStep:  0.05,
		AnomalyWindow:    time.Minute,
		AnomalyMultiple:  5,
		AnomalyThreshold: 3,
		AnomalyHold:      15 * time.Minute,
		SlopeFloor:       0.1,
	}
}

// Outcome is the result of one engine evaluation: the decision plus the
// control fields to write back to the campaign state.
type Outcome struct {
	Decision domain.Decision

	Multiplier           float64
	Throttle             float64
	Status               domain.Status
	ConsecutiveAnomalies int
	HoldUntil            time.Time
	ThrottleBeforeHold   float64

	// EnteredHold is set when this evaluation started an anomaly hold.
	EnteredHold bool
}

// measurement holds the inputs the controller derives from state.
type measurement struct {
	elapsed  float64
	target   float64
	actual   float64
	err      float64
	observed float64 // units per second
	expected float64 // units per second
}

// Engine is the pacing controller. Evaluate is a pure function of its
// inputs, so re-running it on identical state yields an identical outcome.
type Engine struct {
	params EngineParams
}

// NewEngine returns an engine with the given parameters.
func NewEngine(p EngineParams) *Engine {
	return &Engine{params: p}
}

func (e *Engine) measure(st *domain.PacingState, now time.Time) measurement {
	cfg := st.Config
	m := measurement{
		elapsed: cfg.ElapsedFraction(now),
		actual:  st.ActualSpendFraction(),
	}
	m.target = cfg.Curve.At(m.elapsed)
	m.err = m.target - m.actual

	if secs := cfg.PeriodDuration().Seconds(); secs > 0 {
		slope := math.Max(cfg.Curve.Slope(m.elapsed), e.params.SlopeFloor)
		m.expected = slope * float64(cfg.TotalBudget) / secs
	}
	if w := e.params.AnomalyWindow; w > 0 {
		from := now.Add(-w)
		var sum int64
		st.RecentSpend.Each(func(s domain.SpendSample) {
			if s.At.After(from) && !s.At.After(now) {
				sum += s.Amount
			}
		})
		m.observed = float64(sum) / w.Seconds()
	}
	return m
}

// Evaluate computes the next throttle and multiplier for st at now.
//
// Rules apply in priority order: budget exhaustion, anomaly hold, then a
// proportional correction toward the target curve outside the dead-band.
func (e *Engine) Evaluate(st *domain.PacingState, now time.Time) (Outcome, error) {
	cfg := st.Config
	if err := cfg.Validate(); err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", port.ErrEngineFault, err)
	}
	status := st.Status
	if status == domain.StatusError {
		status = st.StatusBeforeFault
		if status == "" {
			status = domain.StatusActive
		}
	}

	m := e.measure(st, now)
	out := Outcome{
		Multiplier:           domain.Clamp(st.Multiplier, cfg.MinMultiplier, cfg.MaxMultiplier),
		Throttle:             domain.Clamp(st.Throttle, 0, 1),
		Status:               status,
		ConsecutiveAnomalies: st.ConsecutiveAnomalies,
		HoldUntil:            st.HoldUntil,
		ThrottleBeforeHold:   st.ThrottleBeforeHold,
	}

	reason := e.decide(&out, cfg, m, now)
	out.Decision = domain.Decision{
		CampaignID: cfg.CampaignID,
		Timestamp:  now,
		Multiplier: out.Multiplier,
		Throttle:   out.Throttle,
		Reason:     reason,
		Status:     out.Status,
		Error:      m.err,
	}
	return out, nil
}

func (e *Engine) decide(out *Outcome, cfg domain.BudgetConfig, m measurement, now time.Time) domain.Reason {
	p := e.params

	if out.Status == domain.StatusExhausted || m.actual >= 1 {
		out.Status = domain.StatusExhausted
		out.Throttle = 0
		return domain.ReasonBudgetExhausted
	}

	if m.expected > 0 && m.observed > p.AnomalyMultiple*m.expected {
		out.ConsecutiveAnomalies = min(out.ConsecutiveAnomalies+1, p.AnomalyThreshold)
	} else if out.ConsecutiveAnomalies > 0 {
		out.ConsecutiveAnomalies--
	}

	switch {
	case out.Status == domain.StatusPaused:
		if out.ConsecutiveAnomalies > 0 || now.Before(out.HoldUntil) {
			out.Throttle = 0
			return domain.ReasonAnomalyHold
		}
		out.Status = domain.StatusActive
		out.Throttle = out.ThrottleBeforeHold
		out.HoldUntil = time.Time{}
	case p.AnomalyThreshold > 0 && out.ConsecutiveAnomalies >= p.AnomalyThreshold:
		out.Status = domain.StatusPaused
		out.ThrottleBeforeHold = out.Throttle
		out.Throttle = 0
		out.HoldUntil = now.Add(p.AnomalyHold)
		out.EnteredHold = true
		return domain.ReasonAnomalyHold
	}

	if math.Abs(m.err) <= p.DeadBand {
		return domain.ReasonOnTarget
	}
	delta := domain.Clamp(p.Gain*m.err, -p.MaxStep, p.MaxStep)
	tdelta := domain.Clamp(p.ThrottleGain*m.err, -p.ThrottleMaxStep, p.ThrottleMaxStep)
	out.Multiplier = domain.Clamp(out.Multiplier+delta, cfg.MinMultiplier, cfg.MaxMultiplier)
	out.Throttle = domain.Clamp(out.Throttle+tdelta, 0, 1)
	if m.err > 0 {
		return domain.ReasonUnderspend
	}
	return domain.ReasonOverspend
}
