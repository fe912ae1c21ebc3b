package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// DecisionPublisher writes decisions back to campaign state and forwards
// them to the bid surface. Delivery is best-effort: a failed delivery never
// rolls back state, and the next tick publishes again.
type DecisionPublisher struct {
	surface  port.BidSurface
	observer port.Observer
	logger   *slog.Logger
	newID    func() string
}

// NewDecisionPublisher returns a publisher delivering to surface.
func NewDecisionPublisher(surface port.BidSurface, observer port.Observer, logger *slog.Logger) *DecisionPublisher {
	return &DecisionPublisher{
		surface:  surface,
		observer: observer,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// record applies out to the cell and appends the decision to its history.
// before is the status out was computed from. If an ingested event lifted
// an expired hold meanwhile, the lift stands and only the multiplier is
// taken from out.
func (p *DecisionPublisher) record(c *campaignCell, before domain.Status, out Outcome) domain.Decision {
	d := out.Decision
	d.ID = p.newID()

	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Multiplier = out.Multiplier
	lifted := before == domain.StatusPaused && st.Status == domain.StatusActive &&
		out.Status == domain.StatusPaused
	if lifted {
		d.Status = st.Status
		d.Throttle = st.Throttle
	} else {
		st.Throttle = out.Throttle
		st.Status = out.Status
		st.ConsecutiveAnomalies = out.ConsecutiveAnomalies
		st.HoldUntil = out.HoldUntil
		st.ThrottleBeforeHold = out.ThrottleBeforeHold
	}
	st.StatusBeforeFault = ""
	st.History.Push(d)
	return d
}

// deliver forwards d to the bid surface.
func (p *DecisionPublisher) deliver(ctx context.Context, d domain.Decision) {
	p.observer.DecisionPublished(d)
	if err := p.surface.ApplyDecision(ctx, d); err != nil {
		p.observer.DeliveryFailed(d, err)
		p.logger.Warn("decision delivery failed",
			slog.Int64("campaign_id", d.CampaignID),
			slog.String("decision_id", d.ID),
			slog.Any("error", err))
	}
}
