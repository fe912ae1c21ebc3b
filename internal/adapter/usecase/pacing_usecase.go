package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// Options configures a PacingUseCase.
type Options struct {
	Engine EngineParams

	// DefaultMultiplier and DefaultThrottle seed the controls of a fresh
	// period until real spend signal arrives.
	DefaultMultiplier float64
	DefaultThrottle   float64

	// WindowCapacity bounds the per-campaign spend window and
	// HistoryCapacity the per-campaign decision history.
	WindowCapacity  int
	HistoryCapacity int

	// PendingCapacity and PendingGrace bound how many events are held for a
	// campaign whose config has not arrived, and for how long. Zero disables
	// buffering.
	PendingCapacity int
	PendingGrace    time.Duration

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the defaults used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Engine:            DefaultEngineParams(),
		DefaultMultiplier: 1.0,
		DefaultThrottle:   0.8,
		WindowCapacity:    256,
		HistoryCapacity:   64,
		PendingCapacity:   128,
		PendingGrace:      2 * time.Minute,
		Now:               time.Now,
	}
}

// PacingUseCase runs the pacing control loop. It implements
// port.PacingUseCase for inbound adapters and port.PacingLoop for the
// scheduler.
type PacingUseCase struct {
	configs   port.ConfigStore
	observer  port.Observer
	logger    *slog.Logger
	publisher *DecisionPublisher
	engine    *Engine
	store     *StateStore
	pending   *pendingBuffer
	opts      Options
	now       func() time.Time

	// installMu serializes creating and retiring cells with ingesting events
	// for campaigns that have none, so one period never gets two cells and a
	// buffered event is never left behind by an install.
	installMu sync.Mutex

	// evaluate computes an outcome from a state snapshot; it is engine.Evaluate
	// unless replaced in tests.
	evaluate func(*domain.PacingState, time.Time) (Outcome, error)
}

// NewPacingUseCase wires the control loop to its collaborators.
func NewPacingUseCase(configs port.ConfigStore, surface port.BidSurface, observer port.Observer, logger *slog.Logger, opts Options) *PacingUseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	engine := NewEngine(opts.Engine)
	return &PacingUseCase{
		configs:   configs,
		observer:  observer,
		logger:    logger,
		publisher: NewDecisionPublisher(surface, observer, logger),
		engine:    engine,
		store:     NewStateStore(),
		pending:   newPendingBuffer(opts.PendingCapacity, opts.PendingGrace),
		opts:      opts,
		now:       opts.Now,
		evaluate:  engine.Evaluate,
	}
}

type evalResult struct {
	out Outcome
	err error
}

// Evaluate runs one pacing evaluation for a campaign and publishes the
// decision. The engine runs on a snapshot outside the cell lock; only the
// control fields are written back, so events ingested meanwhile are kept.
//
// A panic, an engine error or ctx expiring before the engine returns puts
// the campaign in ERROR and yields ErrEngineFault; the next call retries from
// the last good state.
func (u *PacingUseCase) Evaluate(ctx context.Context, campaignID int64, now time.Time) (*domain.Decision, error) {
	c := u.store.get(campaignID)
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %d", port.ErrUnknownCampaign, campaignID)
	}
	if !c.busy.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: campaign %d", port.ErrEvaluationInFlight, campaignID)
	}
	snap := c.snapshot()

	done := make(chan evalResult, 1)
	go func() {
		var r evalResult
		defer func() {
			if p := recover(); p != nil {
				r.err = fmt.Errorf("%w: campaign %d: panic: %v", port.ErrEngineFault, campaignID, p)
			}
			done <- r
		}()
		r.out, r.err = u.evaluate(snap, now)
	}()

	select {
	case r := <-done:
		defer c.busy.Store(false)
		if r.err != nil {
			if !errors.Is(r.err, port.ErrEngineFault) {
				r.err = fmt.Errorf("%w: campaign %d: %w", port.ErrEngineFault, campaignID, r.err)
			}
			u.fault(c, campaignID, r.err)
			return nil, r.err
		}
		d := u.publisher.record(c, snap.Status, r.out)
		if u.store.get(campaignID) != c {
			// The period rolled over while evaluating; the decision belongs
			// to evicted state.
			return &d, nil
		}
		u.publisher.deliver(ctx, d)
		if r.out.EnteredHold {
			u.observer.AnomalyHold(d)
			u.logger.Warn("anomaly hold",
				slog.Int64("campaign_id", campaignID),
				slog.Time("hold_until", r.out.HoldUntil))
		}
		return &d, nil
	case <-ctx.Done():
		err := fmt.Errorf("%w: campaign %d: %w", port.ErrEngineFault, campaignID, ctx.Err())
		u.fault(c, campaignID, err)
		go func() {
			<-done
			c.busy.Store(false)
		}()
		return nil, err
	}
}

// fault puts the cell in ERROR, remembering the last good status.
func (u *PacingUseCase) fault(c *campaignCell, campaignID int64, err error) {
	c.mu.Lock()
	if c.state.Status != domain.StatusError {
		c.state.StatusBeforeFault = c.state.Status
		c.state.Status = domain.StatusError
	}
	c.mu.Unlock()
	u.observer.EngineFault(campaignID, err)
	u.logger.Error("pacing evaluation failed", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
}

// Schedulable returns the campaigns that are ACTIVE, PAUSED or in ERROR.
func (u *PacingUseCase) Schedulable() []int64 {
	ids := u.store.ids()
	out := ids[:0]
	for _, id := range ids {
		c := u.store.get(id)
		if c == nil {
			continue
		}
		c.mu.Lock()
		ok := c.state.Schedulable()
		c.mu.Unlock()
		if ok {
			out = append(out, id)
		}
	}
	return out
}

// ExpirePeriods evicts every state whose period has ended. A PAUSED
// campaign simply expires; the next period starts from fresh state.
func (u *PacingUseCase) ExpirePeriods(now time.Time) []int64 {
	var expired []int64
	for _, id := range u.store.ids() {
		c := u.store.get(id)
		if c == nil {
			continue
		}
		c.mu.Lock()
		ended := !now.Before(c.state.Config.PeriodEnd)
		c.mu.Unlock()
		if ended && u.store.removeCell(id, c) {
			expired = append(expired, id)
			u.observer.CampaignRemoved(id)
			u.logger.Info("budget period ended", slog.Int64("campaign_id", id))
		}
	}
	return expired
}

// Reconcile loads the current config of a campaign and creates, updates or
// retires its pacing state accordingly.
func (u *PacingUseCase) Reconcile(ctx context.Context, campaignID int64) error {
	cfg, err := u.configs.GetCampaignConfig(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("load config for campaign %d: %w", campaignID, err)
	}
	if cfg == nil {
		u.retire(campaignID)
		return nil
	}
	return u.install(*cfg)
}

// SyncConfigs reconciles every active config and retires campaigns that
// are no longer active.
func (u *PacingUseCase) SyncConfigs(ctx context.Context) error {
	cfgs, err := u.configs.GetActiveCampaignConfigs(ctx)
	if err != nil && cfgs == nil {
		return fmt.Errorf("load active campaign configs: %w", err)
	}
	// A store may return the valid configs alongside errors for bad ones.
	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	seen := make(map[int64]struct{}, len(cfgs))
	for _, cfg := range cfgs {
		seen[cfg.CampaignID] = struct{}{}
		if err = u.install(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	for _, id := range u.store.ids() {
		if _, ok := seen[id]; !ok {
			u.retire(id)
		}
	}
	return errors.Join(errs...)
}

// install makes cfg the campaign's current config. A config for the period
// already tracked updates it in place; a later period starts fresh state.
func (u *PacingUseCase) install(cfg domain.BudgetConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	u.installMu.Lock()
	defer u.installMu.Unlock()
	if !u.now().Before(cfg.PeriodEnd) {
		return nil
	}
	if c := u.store.get(cfg.CampaignID); c != nil {
		c.mu.Lock()
		cur := c.state.Config
		switch {
		case cur.PeriodStart.Equal(cfg.PeriodStart):
			if !cur.Equal(cfg) {
				c.state.Config = cfg
				c.state.Multiplier = domain.Clamp(c.state.Multiplier, cfg.MinMultiplier, cfg.MaxMultiplier)
				u.logger.Info("budget config updated", slog.Int64("campaign_id", cfg.CampaignID))
			}
			c.mu.Unlock()
			return nil
		case cur.PeriodStart.After(cfg.PeriodStart):
			c.mu.Unlock()
			return nil
		}
		c.mu.Unlock()
	}

	st := domain.NewPacingState(cfg, u.opts.DefaultMultiplier, u.opts.DefaultThrottle,
		u.opts.WindowCapacity, u.opts.HistoryCapacity)
	c := u.store.put(st)
	u.logger.Info("pacing started",
		slog.Int64("campaign_id", cfg.CampaignID),
		slog.Time("period_start", cfg.PeriodStart),
		slog.Time("period_end", cfg.PeriodEnd),
		slog.Int64("total_budget", cfg.TotalBudget))

	for _, ev := range u.pending.take(cfg.CampaignID) {
		if err := u.apply(c, ev); err != nil {
			u.reject(ev.CampaignID, err)
		}
	}
	return nil
}

// retire drops a campaign the config store no longer knows. Buffered events
// for it are rejected.
func (u *PacingUseCase) retire(campaignID int64) {
	u.installMu.Lock()
	defer u.installMu.Unlock()
	had := u.store.get(campaignID) != nil
	u.store.retire(campaignID)
	if n := len(u.pending.take(campaignID)); n > 0 {
		err := fmt.Errorf("%w: campaign %d", port.ErrUnknownCampaign, campaignID)
		for range n {
			u.observer.EventRejected(campaignID, err)
		}
	}
	if had {
		u.observer.CampaignRemoved(campaignID)
		u.logger.Info("pacing retired", slog.Int64("campaign_id", campaignID))
	}
}

// Resume lifts an anomaly hold manually.
func (u *PacingUseCase) Resume(_ context.Context, campaignID int64) error {
	c := u.store.get(campaignID)
	if c == nil {
		return fmt.Errorf("%w: campaign %d", port.ErrUnknownCampaign, campaignID)
	}
	if !c.busy.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: campaign %d", port.ErrEvaluationInFlight, campaignID)
	}
	defer c.busy.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	paused := st.Status == domain.StatusPaused ||
		(st.Status == domain.StatusError && st.StatusBeforeFault == domain.StatusPaused)
	if !paused {
		return fmt.Errorf("%w: campaign %d is %s", port.ErrNotPaused, campaignID, st.Status)
	}
	st.Status = domain.StatusActive
	st.StatusBeforeFault = ""
	st.ConsecutiveAnomalies = 0
	st.HoldUntil = time.Time{}
	st.Throttle = st.ThrottleBeforeHold
	u.logger.Info("anomaly hold lifted manually", slog.Int64("campaign_id", campaignID))
	return nil
}
