package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

const recentDecisions = 10

func toView(st *domain.PacingState) port.PacingView {
	v := port.PacingView{
		CampaignID:           st.Config.CampaignID,
		Status:               st.Status,
		PeriodStart:          st.Config.PeriodStart,
		PeriodEnd:            st.Config.PeriodEnd,
		Curve:                st.Config.Curve,
		TotalBudget:          st.Config.TotalBudget,
		SpendToDate:          st.SpendToDate,
		Overshoot:            st.Overshoot,
		LastEventAt:          st.LastEventAt,
		Multiplier:           st.Multiplier,
		Throttle:             st.Throttle,
		ConsecutiveAnomalies: st.ConsecutiveAnomalies,
	}
	if !st.HoldUntil.IsZero() {
		h := st.HoldUntil
		v.HoldUntil = &h
	}
	return v
}

// ListCampaigns returns a view of every campaign with pacing state.
func (u *PacingUseCase) ListCampaigns(_ context.Context) ([]port.PacingView, error) {
	ids := u.store.ids()
	views := make([]port.PacingView, 0, len(ids))
	for _, id := range ids {
		if c := u.store.get(id); c != nil {
			views = append(views, toView(c.snapshot()))
		}
	}
	return views, nil
}

// Pacing returns the current view of one campaign.
func (u *PacingUseCase) Pacing(_ context.Context, campaignID int64) (*port.PacingView, error) {
	c := u.store.get(campaignID)
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %d", port.ErrUnknownCampaign, campaignID)
	}
	v := toView(c.snapshot())
	return &v, nil
}

// Analyze measures a campaign against its target curve at the current time
// and summarises what the controller is doing about it.
func (u *PacingUseCase) Analyze(_ context.Context, campaignID int64) (*port.Analysis, error) {
	c := u.store.get(campaignID)
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %d", port.ErrUnknownCampaign, campaignID)
	}
	st := c.snapshot()
	now := u.now()
	m := u.engine.measure(st, now)

	a := &port.Analysis{
		PacingView:          toView(st),
		ElapsedFraction:     m.elapsed,
		TargetSpendFraction: m.target,
		ActualSpendFraction: m.actual,
		PacingError:         m.err,
		ObservedVelocity:    m.observed * 3600,
		ExpectedVelocity:    m.expected * 3600,
		Clicks:              st.Clicks,
		Conversions:         st.Conversions,
		RecentDecisions:     st.History.Last(recentDecisions),
	}
	if m.elapsed > 0 {
		a.ProjectedSpend = int64(math.Round(float64(st.SpendToDate) / m.elapsed))
	}
	if st.Conversions > 0 {
		cpa := float64(st.SpendToDate) / float64(st.Conversions)
		a.CostPerConversion = &cpa
	}
	a.Insights = u.insights(st, m, a.ProjectedSpend, now)
	return a, nil
}

func (u *PacingUseCase) insights(st *domain.PacingState, m measurement, projected int64, now time.Time) []string {
	p := u.opts.Engine
	budget := st.Config.TotalBudget
	var out []string

	switch st.Status {
	case domain.StatusExhausted:
		out = append(out, "Budget exhausted; delivery is stopped until the next period.")
		if st.Overshoot > 0 {
			out = append(out, fmt.Sprintf("Late events overshot the budget by %d.", st.Overshoot))
		}
		return out
	case domain.StatusPaused:
		out = append(out, fmt.Sprintf("Delivery is on anomaly hold until at least %s.",
			st.HoldUntil.Format(time.RFC3339)))
	case domain.StatusError:
		out = append(out, "The last pacing evaluation failed; it is retried on the next tick.")
	}

	switch {
	case math.Abs(m.err) <= p.DeadBand:
		out = append(out, "Spend is tracking the target curve.")
	case m.err > 0:
		out = append(out, fmt.Sprintf("Underspending: %.1f%% behind the target curve.", m.err*100))
	default:
		out = append(out, fmt.Sprintf("Overspending: %.1f%% ahead of the target curve.", -m.err*100))
	}

	if m.elapsed > 0 && budget > 0 {
		switch {
		case projected > budget:
			out = append(out, fmt.Sprintf("At the current rate the budget runs out before the period ends (projected %d of %d).", projected, budget))
		case float64(projected) < 0.8*float64(budget):
			out = append(out, fmt.Sprintf("At the current rate only %d of %d will be spent.", projected, budget))
		}
	}
	if m.expected > 0 && m.observed > p.AnomalyMultiple*m.expected {
		out = append(out, fmt.Sprintf("Recent spend velocity is %.1fx the expected rate.", m.observed/m.expected))
	}
	if st.Multiplier >= st.Config.MaxMultiplier && m.err > p.DeadBand {
		out = append(out, "Bid multiplier is at its ceiling; consider raising the maximum multiplier.")
	}
	if st.LastEventAt.IsZero() {
		out = append(out, "No spend has been reported this period.")
	} else if gap := now.Sub(st.LastEventAt); gap > time.Hour {
		out = append(out, fmt.Sprintf("No spend reported for %s.", gap.Truncate(time.Minute)))
	}
	return out
}
