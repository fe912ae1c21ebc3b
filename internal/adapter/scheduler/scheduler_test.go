package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
	"mesa-pacing/internal/core/port/mocks"
)

var tickAt = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestScheduler(loop port.PacingLoop, observer port.Observer, opts Options) *Scheduler {
	return New(loop, observer, noop.NewTracerProvider().Tracer("test"), slog.New(slog.DiscardHandler), opts)
}

func TestTickReportsOutcomes(t *testing.T) {
	loop := mocks.NewMockPacingLoop(t)
	observer := mocks.NewMockObserver(t)

	loop.EXPECT().ExpirePeriods(tickAt).Return([]int64{9}).Once()
	loop.EXPECT().DropExpiredPending(tickAt).Return(4).Once()
	loop.EXPECT().Schedulable().Return([]int64{1, 2, 3}).Once()
	loop.EXPECT().Evaluate(mock.Anything, int64(1), tickAt).Return(&domain.Decision{CampaignID: 1}, nil).Once()
	loop.EXPECT().Evaluate(mock.Anything, int64(2), tickAt).Return(nil, port.ErrEngineFault).Once()
	loop.EXPECT().Evaluate(mock.Anything, int64(3), tickAt).Return(nil, port.ErrEvaluationInFlight).Once()

	var report port.TickReport
	observer.EXPECT().TickCompleted(mock.Anything).Run(func(r port.TickReport) { report = r }).Once()

	s := newTestScheduler(loop, observer, Options{
		Interval:    time.Second,
		Concurrency: 2,
		EvalTimeout: time.Second,
	})
	r := s.Tick(context.Background(), tickAt)

	assert.Equal(t, r, report)
	assert.Equal(t, 3, r.Campaigns)
	assert.Equal(t, 1, r.Evaluated)
	assert.Equal(t, 1, r.Faulted)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 1, r.Expired)
	assert.Equal(t, 4, r.Dropped)
}

func TestTickEvaluationOutlivesCancellation(t *testing.T) {
	loop := mocks.NewMockPacingLoop(t)
	observer := mocks.NewMockObserver(t)
	loop.EXPECT().ExpirePeriods(tickAt).Return(nil)
	loop.EXPECT().DropExpiredPending(tickAt).Return(0)
	loop.EXPECT().Schedulable().Return([]int64{1})
	loop.EXPECT().Evaluate(mock.Anything, int64(1), tickAt).
		RunAndReturn(func(ctx context.Context, _ int64, _ time.Time) (*domain.Decision, error) {
			assert.NoError(t, ctx.Err())
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			return &domain.Decision{}, nil
		})
	observer.EXPECT().TickCompleted(mock.Anything)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newTestScheduler(loop, observer, Options{Interval: time.Second, EvalTimeout: 50 * time.Millisecond})
	assert.Equal(t, 1, s.Tick(ctx, tickAt).Evaluated)
}

func TestTickRespectsConcurrencyLimit(t *testing.T) {
	loop := mocks.NewMockPacingLoop(t)
	observer := mocks.NewMockObserver(t)
	ids := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	loop.EXPECT().ExpirePeriods(tickAt).Return(nil)
	loop.EXPECT().DropExpiredPending(tickAt).Return(0)
	loop.EXPECT().Schedulable().Return(ids)

	var active, peak atomic.Int32
	loop.EXPECT().Evaluate(mock.Anything, mock.AnythingOfType("int64"), tickAt).
		RunAndReturn(func(context.Context, int64, time.Time) (*domain.Decision, error) {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			active.Add(-1)
			return &domain.Decision{}, nil
		}).Times(len(ids))
	observer.EXPECT().TickCompleted(mock.Anything)

	s := newTestScheduler(loop, observer, Options{Interval: time.Second, Concurrency: 3, EvalTimeout: time.Second})
	r := s.Tick(context.Background(), tickAt)
	assert.Equal(t, len(ids), r.Evaluated)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestTickSyncsWhenDue(t *testing.T) {
	loop := mocks.NewMockPacingLoop(t)
	observer := mocks.NewMockObserver(t)
	loop.EXPECT().ExpirePeriods(mock.Anything).Return(nil)
	loop.EXPECT().DropExpiredPending(mock.Anything).Return(0)
	loop.EXPECT().Schedulable().Return(nil)
	loop.EXPECT().SyncConfigs(mock.Anything).Return(errors.New("partial")).Times(2)
	observer.EXPECT().TickCompleted(mock.Anything)

	s := newTestScheduler(loop, observer, Options{Interval: time.Second, SyncInterval: time.Minute})
	s.lastSync = tickAt
	s.Tick(context.Background(), tickAt.Add(30*time.Second))
	s.Tick(context.Background(), tickAt.Add(time.Minute))
	s.Tick(context.Background(), tickAt.Add(90*time.Second))
	s.Tick(context.Background(), tickAt.Add(2*time.Minute))
}

func TestRunSkipsOverlappingTicks(t *testing.T) {
	loop := mocks.NewMockPacingLoop(t)
	observer := mocks.NewMockObserver(t)
	loop.EXPECT().SyncConfigs(mock.Anything).Return(nil).Once()
	loop.EXPECT().ExpirePeriods(mock.Anything).Return(nil)
	loop.EXPECT().DropExpiredPending(mock.Anything).Return(0)
	loop.EXPECT().Schedulable().Return([]int64{1})

	var running, overlaps atomic.Int32
	loop.EXPECT().Evaluate(mock.Anything, int64(1), mock.Anything).
		RunAndReturn(func(context.Context, int64, time.Time) (*domain.Decision, error) {
			if running.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(40 * time.Millisecond)
			running.Add(-1)
			return &domain.Decision{}, nil
		})
	var skipped atomic.Int32
	observer.EXPECT().TickSkipped().Run(func() { skipped.Add(1) })
	observer.EXPECT().TickCompleted(mock.Anything)

	s := newTestScheduler(loop, observer, Options{Interval: 10 * time.Millisecond, EvalTimeout: time.Second})
	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	assert.Eventually(t, func() bool { return skipped.Load() > 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, <-done)
	assert.Zero(t, overlaps.Load())
}

func TestStopFinishesInFlightAndStartsNoMore(t *testing.T) {
	loop := mocks.NewMockPacingLoop(t)
	observer := mocks.NewMockObserver(t)
	loop.EXPECT().SyncConfigs(mock.Anything).Return(nil).Once()
	loop.EXPECT().ExpirePeriods(mock.Anything).Return(nil).Once()
	loop.EXPECT().DropExpiredPending(mock.Anything).Return(0).Once()
	loop.EXPECT().Schedulable().Return([]int64{1, 2}).Once()

	entered := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	loop.EXPECT().Evaluate(mock.Anything, int64(1), mock.Anything).
		RunAndReturn(func(context.Context, int64, time.Time) (*domain.Decision, error) {
			close(entered)
			<-release
			finished.Store(true)
			return &domain.Decision{}, nil
		}).Once()

	var report port.TickReport
	observer.EXPECT().TickCompleted(mock.Anything).Run(func(r port.TickReport) { report = r }).Once()
	observer.EXPECT().TickSkipped().Maybe()

	s := newTestScheduler(loop, observer, Options{Interval: 5 * time.Millisecond, Concurrency: 1, EvalTimeout: time.Second})
	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()
	<-entered

	stopped := make(chan error, 1)
	go func() { stopped <- s.Stop(context.Background()) }()
	assert.Eventually(t, func() bool { return s.stopping.Load() }, time.Second, time.Millisecond)
	close(release)

	require.NoError(t, <-stopped)
	require.NoError(t, <-done)
	assert.True(t, finished.Load())
	assert.Equal(t, 1, report.Evaluated)
	assert.Equal(t, 1, report.Skipped)
}

func TestCancelFinishesInFlightAndStartsNoMore(t *testing.T) {
	loop := mocks.NewMockPacingLoop(t)
	observer := mocks.NewMockObserver(t)
	loop.EXPECT().SyncConfigs(mock.Anything).Return(nil).Once()
	loop.EXPECT().ExpirePeriods(mock.Anything).Return(nil).Once()
	loop.EXPECT().DropExpiredPending(mock.Anything).Return(0).Once()
	loop.EXPECT().Schedulable().Return([]int64{1, 2, 3}).Once()

	entered := make(chan struct{})
	release := make(chan struct{})
	var started atomic.Int32
	loop.EXPECT().Evaluate(mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		RunAndReturn(func(_ context.Context, id int64, _ time.Time) (*domain.Decision, error) {
			started.Add(1)
			if id == 1 {
				close(entered)
				<-release
			}
			return &domain.Decision{CampaignID: id}, nil
		}).Maybe()

	var report port.TickReport
	observer.EXPECT().TickCompleted(mock.Anything).Run(func(r port.TickReport) { report = r }).Once()
	observer.EXPECT().TickSkipped().Maybe()

	s := newTestScheduler(loop, observer, Options{Interval: 5 * time.Millisecond, Concurrency: 1, EvalTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	<-entered

	cancel()
	assert.Eventually(t, func() bool { return s.stopping.Load() }, time.Second, time.Millisecond)
	close(release)

	require.NoError(t, <-done)
	assert.Equal(t, int32(1), started.Load())
	assert.Equal(t, 1, report.Evaluated)
	assert.Equal(t, 2, report.Skipped)
	assert.NoError(t, s.Stop(context.Background()))
}

func TestStopBeforeRun(t *testing.T) {
	s := newTestScheduler(mocks.NewMockPacingLoop(t), mocks.NewMockObserver(t), Options{Interval: time.Second})
	assert.NoError(t, s.Stop(context.Background()))
}
