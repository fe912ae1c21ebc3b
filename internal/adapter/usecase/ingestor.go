package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// pendingEvents are events that arrived before their campaign's config.
type pendingEvents struct {
	firstSeen time.Time
	events    []domain.SpendEvent
}

// pendingBuffer holds events for campaigns without config for a grace
// period. Each campaign keeps at most capacity events; the oldest are
// dropped first.
type pendingBuffer struct {
	mu         sync.Mutex
	capacity   int
	grace      time.Duration
	byCampaign map[int64]*pendingEvents
}

func newPendingBuffer(capacity int, grace time.Duration) *pendingBuffer {
	return &pendingBuffer{
		capacity:   capacity,
		grace:      grace,
		byCampaign: make(map[int64]*pendingEvents),
	}
}

func (b *pendingBuffer) enabled() bool {
	return b.capacity > 0 && b.grace > 0
}

// add buffers ev and reports whether an older event had to be dropped.
func (b *pendingBuffer) add(ev domain.SpendEvent, now time.Time) (dropped bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.byCampaign[ev.CampaignID]
	if !ok {
		p = &pendingEvents{firstSeen: now}
		b.byCampaign[ev.CampaignID] = p
	}
	if len(p.events) >= b.capacity {
		p.events = p.events[1:]
		dropped = true
	}
	p.events = append(p.events, ev)
	return dropped
}

// take removes and returns the events buffered for id in arrival order.
func (b *pendingBuffer) take(id int64) []domain.SpendEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.byCampaign[id]
	if !ok {
		return nil
	}
	delete(b.byCampaign, id)
	return p.events
}

// expire removes campaigns whose grace period has run out and returns how
// many events each one lost.
func (b *pendingBuffer) expire(now time.Time) map[int64]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out map[int64]int
	for id, p := range b.byCampaign {
		if now.Sub(p.firstSeen) < b.grace {
			continue
		}
		if out == nil {
			out = make(map[int64]int)
		}
		out[id] = len(p.events)
		delete(b.byCampaign, id)
	}
	return out
}

// Ingest applies a spend event to its campaign's pacing state. Events are
// applied in delivery order.
func (u *PacingUseCase) Ingest(_ context.Context, ev domain.SpendEvent) error {
	if ev.CampaignID <= 0 || ev.Amount < 0 || ev.Timestamp.IsZero() {
		err := fmt.Errorf("%w: campaign %d amount %d", port.ErrInvalidEvent, ev.CampaignID, ev.Amount)
		u.reject(ev.CampaignID, err)
		return err
	}

	c := u.store.get(ev.CampaignID)
	if c == nil {
		return u.ingestWithoutState(ev)
	}
	return u.applyOrReject(c, ev)
}

// ingestWithoutState handles an event whose campaign had no cell at lookup.
// The lookup is repeated under installMu, since an install may have
// completed in between.
func (u *PacingUseCase) ingestWithoutState(ev domain.SpendEvent) error {
	u.installMu.Lock()
	defer u.installMu.Unlock()
	if c := u.store.get(ev.CampaignID); c != nil {
		return u.applyOrReject(c, ev)
	}
	if u.store.isRetired(ev.CampaignID) {
		err := fmt.Errorf("%w: campaign %d", port.ErrUnknownCampaign, ev.CampaignID)
		u.reject(ev.CampaignID, err)
		return err
	}
	return u.buffer(ev)
}

func (u *PacingUseCase) applyOrReject(c *campaignCell, ev domain.SpendEvent) error {
	if err := u.apply(c, ev); err != nil {
		u.reject(ev.CampaignID, err)
		return err
	}
	return nil
}

// apply validates ev against the cell's period and records it.
func (u *PacingUseCase) apply(c *campaignCell, ev domain.SpendEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	if !st.Config.Contains(ev.Timestamp) {
		return fmt.Errorf("%w: campaign %d at %s, period [%s, %s)", port.ErrStaleEvent,
			ev.CampaignID, ev.Timestamp.Format(time.RFC3339), st.Config.PeriodStart.Format(time.RFC3339),
			st.Config.PeriodEnd.Format(time.RFC3339))
	}
	st.ApplyEvent(ev)
	if st.Status == domain.StatusPaused && st.HoldExpired(ev.Timestamp) {
		st.Status = domain.StatusActive
		st.Throttle = st.ThrottleBeforeHold
		st.HoldUntil = time.Time{}
	}
	return nil
}

func (u *PacingUseCase) buffer(ev domain.SpendEvent) error {
	err := fmt.Errorf("%w: campaign %d", port.ErrConfigMissing, ev.CampaignID)
	if !u.pending.enabled() {
		u.reject(ev.CampaignID, err)
		return err
	}
	if u.pending.add(ev, u.now()) {
		u.reject(ev.CampaignID, err)
	}
	u.logger.Debug("buffered event without config", slog.Int64("campaign_id", ev.CampaignID))
	return err
}

func (u *PacingUseCase) reject(campaignID int64, err error) {
	u.observer.EventRejected(campaignID, err)
	u.logger.Debug("event rejected", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
}

// DropExpiredPending drops buffered events whose campaign config did not
// arrive within the grace period.
func (u *PacingUseCase) DropExpiredPending(now time.Time) int {
	total := 0
	for id, n := range u.pending.expire(now) {
		err := fmt.Errorf("%w: campaign %d: grace period elapsed", port.ErrConfigMissing, id)
		for range n {
			u.observer.EventRejected(id, err)
		}
		u.logger.Warn("dropped events without config", slog.Int64("campaign_id", id), slog.Int("events", n))
		total += n
	}
	return total
}
