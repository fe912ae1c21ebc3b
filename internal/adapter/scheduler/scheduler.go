// Package scheduler drives the pacing loop on a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"mesa-pacing/internal/core/port"
)

// Options configures a Scheduler.
type Options struct {
	Interval time.Duration
	// Concurrency caps parallel evaluations within a tick.
	Concurrency int
	// EvalTimeout bounds one campaign evaluation.
	EvalTimeout time.Duration
	// SyncInterval is how often all configs are re-read. Zero disables it.
	SyncInterval time.Duration
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Scheduler ticks the pacing loop. Ticks never overlap: a tick that comes
// due while the previous one runs is skipped and reported.
type Scheduler struct {
	loop     port.PacingLoop
	observer port.Observer
	logger   *slog.Logger
	tracer   trace.Tracer
	opts     Options

	ticking  atomic.Bool
	stopping atomic.Bool
	started  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	lastSync time.Time
}

// New returns a scheduler for loop.
func New(loop port.PacingLoop, observer port.Observer, tracer trace.Tracer, logger *slog.Logger, opts Options) *Scheduler {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.EvalTimeout <= 0 {
		opts.EvalTimeout = opts.Interval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Scheduler{
		loop:     loop,
		observer: observer,
		logger:   logger,
		tracer:   tracer,
		opts:     opts,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run syncs all configs, then ticks every Interval until ctx is done or
// Stop is called. Either way no new evaluation starts afterwards, and Run
// returns once the running tick has finished.
func (s *Scheduler) Run(ctx context.Context) error {
	s.started.Store(true)
	defer close(s.done)

	now := s.opts.Now()
	if err := s.loop.SyncConfigs(ctx); err != nil {
		s.logger.Warn("initial config sync incomplete", slog.Any("error", err))
	}
	s.lastSync = now

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	var inflight sync.WaitGroup
	defer inflight.Wait()
	for {
		select {
		case <-ctx.Done():
			// Workers of the running tick check stopping before they start.
			s.stopping.Store(true)
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			if s.stopping.Load() || ctx.Err() != nil {
				s.stopping.Store(true)
				return nil
			}
			if !s.ticking.CompareAndSwap(false, true) {
				s.observer.TickSkipped()
				s.logger.Warn("tick skipped, previous tick still running")
				continue
			}
			inflight.Add(1)
			go func() {
				defer inflight.Done()
				defer s.ticking.Store(false)
				s.Tick(ctx, s.opts.Now())
			}()
		}
	}
}

// Stop starts no new evaluations and waits for the running ones to finish
// or for ctx to be done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		s.stopping.Store(true)
		close(s.stop)
	})
	if !s.started.Load() {
		return nil
	}
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Tick runs one pass of the loop at now: expire ended periods, drop stale
// pending events, resync configs when due, then evaluate every schedulable
// campaign.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) port.TickReport {
	started := time.Now()
	ctx, span := s.tracer.Start(ctx, "pacing.tick")
	defer span.End()

	r := port.TickReport{Started: now}
	r.Expired = len(s.loop.ExpirePeriods(now))
	r.Dropped = s.loop.DropExpiredPending(now)

	if s.opts.SyncInterval > 0 && now.Sub(s.lastSync) >= s.opts.SyncInterval {
		if err := s.loop.SyncConfigs(ctx); err != nil {
			s.logger.Warn("config sync incomplete", slog.Any("error", err))
		}
		s.lastSync = now
	}

	ids := s.loop.Schedulable()
	r.Campaigns = len(ids)

	var evaluated, faulted, skipped atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(s.opts.Concurrency)
	for _, id := range ids {
		g.Go(func() error {
			if s.stopping.Load() {
				skipped.Add(1)
				return nil
			}
			switch err := s.evaluate(ctx, id, now); {
			case err == nil:
				evaluated.Add(1)
			case errors.Is(err, port.ErrEvaluationInFlight), errors.Is(err, port.ErrUnknownCampaign):
				skipped.Add(1)
			default:
				faulted.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	r.Evaluated = int(evaluated.Load())
	r.Faulted = int(faulted.Load())
	r.Skipped = int(skipped.Load())
	r.Duration = time.Since(started)
	span.SetAttributes(
		attribute.Int("campaigns", r.Campaigns),
		attribute.Int("evaluated", r.Evaluated),
		attribute.Int("faulted", r.Faulted),
	)
	s.observer.TickCompleted(r)
	s.logger.Debug("tick completed",
		slog.Int("campaigns", r.Campaigns),
		slog.Int("evaluated", r.Evaluated),
		slog.Int("faulted", r.Faulted),
		slog.Int("skipped", r.Skipped),
		slog.Int("expired", r.Expired),
		slog.Duration("duration", r.Duration))
	return r
}

// evaluate runs one campaign under its own timeout. The evaluation is
// detached from ctx cancellation so a shutdown lets it finish.
func (s *Scheduler) evaluate(ctx context.Context, id int64, now time.Time) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.EvalTimeout)
	defer cancel()
	ctx, span := s.tracer.Start(ctx, "pacing.evaluate",
		trace.WithAttributes(attribute.Int64("campaign.id", id)))
	defer span.End()

	d, err := s.loop.Evaluate(ctx, id, now)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(
		attribute.String("pacing.reason", string(d.Reason)),
		attribute.String("pacing.status", string(d.Status)),
		attribute.Float64("pacing.multiplier", d.Multiplier),
		attribute.Float64("pacing.throttle", d.Throttle),
	)
	return nil
}
