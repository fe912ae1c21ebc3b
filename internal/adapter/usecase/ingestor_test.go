package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

func TestIngestRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.observer.EXPECT().EventRejected(int64(1), mock.MatchedBy(func(err error) bool {
		return errors.Is(err, port.ErrStaleEvent)
	})).Twice()
	f.observer.EXPECT().EventRejected(int64(1), mock.MatchedBy(func(err error) bool {
		return errors.Is(err, port.ErrInvalidEvent)
	})).Once()
	f.quiet()
	f.sync(t, testConfig(1))

	before := spend(1, periodStart.Add(-time.Second), 5)
	assert.ErrorIs(t, f.uc.Ingest(ctx, before), port.ErrStaleEvent)

	// The period is half-open: its end belongs to the next one.
	atEnd := spend(1, periodStart.Add(24*time.Hour), 5)
	assert.ErrorIs(t, f.uc.Ingest(ctx, atEnd), port.ErrStaleEvent)

	negative := spend(1, f.now, -3)
	assert.ErrorIs(t, f.uc.Ingest(ctx, negative), port.ErrInvalidEvent)

	st := f.state(t, 1)
	assert.Zero(t, st.SpendToDate)
	assert.Zero(t, st.RecentSpend.Len())
}

func TestIngestAggregates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.quiet()
	f.sync(t, testConfig(1))

	clicks, conversions := int64(4), int64(1)
	ev := spend(1, f.now, 25)
	ev.Clicks = &clicks
	ev.Conversions = &conversions
	require.NoError(t, f.uc.Ingest(ctx, ev))
	// Late but in-period events still count.
	require.NoError(t, f.uc.Ingest(ctx, spend(1, f.now.Add(-3*time.Hour), 10)))

	st := f.state(t, 1)
	assert.Equal(t, int64(35), st.SpendToDate)
	assert.Equal(t, int64(4), st.Clicks)
	assert.Equal(t, int64(1), st.Conversions)
	assert.Equal(t, f.now, st.LastEventAt)
	assert.Equal(t, 2, st.RecentSpend.Len())
}

func TestIngestBuffersUntilConfigArrives(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.quiet()

	require.ErrorIs(t, f.uc.Ingest(ctx, spend(1, f.now, 10)), port.ErrConfigMissing)
	require.ErrorIs(t, f.uc.Ingest(ctx, spend(1, f.now, 15)), port.ErrConfigMissing)
	// Buffered events from another period are rejected once the config lands.
	require.ErrorIs(t, f.uc.Ingest(ctx, spend(1, periodStart.Add(-time.Hour), 99)), port.ErrConfigMissing)

	cfg := testConfig(1)
	f.configs.EXPECT().GetCampaignConfig(mock.Anything, int64(1)).Return(&cfg, nil).Once()
	require.NoError(t, f.uc.Reconcile(ctx, 1))

	assert.Equal(t, int64(25), f.state(t, 1).SpendToDate)
	assert.Zero(t, f.uc.DropExpiredPending(f.now.Add(time.Hour)))
}

func TestIngestPendingOverflowAndExpiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.observer.EXPECT().EventRejected(int64(5), mock.Anything).Times(3)
	f.uc.pending = newPendingBuffer(2, time.Minute)

	for i := range 3 {
		err := f.uc.Ingest(ctx, spend(5, f.now.Add(time.Duration(i)*time.Second), 1))
		assert.ErrorIs(t, err, port.ErrConfigMissing)
	}
	// One overflow so far; the two survivors drop after the grace period.
	assert.Zero(t, f.uc.DropExpiredPending(f.now.Add(30*time.Second)))
	assert.Equal(t, 2, f.uc.DropExpiredPending(f.now.Add(time.Minute)))
	assert.Zero(t, f.uc.DropExpiredPending(f.now.Add(2*time.Minute)))
}

func TestIngestWithoutBuffering(t *testing.T) {
	f := newFixture(t)
	f.observer.EXPECT().EventRejected(int64(3), mock.Anything).Once()
	f.uc.pending = newPendingBuffer(0, 0)

	err := f.uc.Ingest(context.Background(), spend(3, f.now, 1))
	assert.ErrorIs(t, err, port.ErrConfigMissing)
	assert.Nil(t, f.uc.pending.take(3))
}

func TestIngestLiftsExpiredHold(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.quiet()
	f.sync(t, testConfig(1))

	c := f.uc.store.get(1)
	c.mu.Lock()
	c.state.Status = domain.StatusPaused
	c.state.Throttle = 0
	c.state.ThrottleBeforeHold = 0.7
	c.state.HoldUntil = f.now.Add(time.Minute)
	c.mu.Unlock()

	require.NoError(t, f.uc.Ingest(ctx, spend(1, f.now, 1)))
	assert.Equal(t, domain.StatusPaused, f.state(t, 1).Status)

	require.NoError(t, f.uc.Ingest(ctx, spend(1, f.now.Add(time.Minute), 1)))
	st := f.state(t, 1)
	assert.Equal(t, domain.StatusActive, st.Status)
	assert.Equal(t, 0.7, st.Throttle)
	assert.True(t, st.HoldUntil.IsZero())
}

func TestIngestRacingInstallIsApplied(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.quiet()

	// Hold the ingest inside its buffering step while the config installs.
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	f.uc.now = func() time.Time {
		once.Do(func() {
			close(entered)
			<-release
		})
		return f.now
	}

	ingested := make(chan error, 1)
	go func() { ingested <- f.uc.Ingest(ctx, spend(1, f.now, 40)) }()
	<-entered

	f.configs.EXPECT().GetActiveCampaignConfigs(mock.Anything).
		Return([]domain.BudgetConfig{testConfig(1)}, nil).Once()
	synced := make(chan error, 1)
	go func() { synced <- f.uc.SyncConfigs(ctx) }()
	time.Sleep(20 * time.Millisecond)
	close(release)

	assert.ErrorIs(t, <-ingested, port.ErrConfigMissing)
	require.NoError(t, <-synced)
	assert.Equal(t, int64(40), f.state(t, 1).SpendToDate)
	assert.Nil(t, f.uc.pending.take(1))
}

func TestConcurrentInstallsKeepOneState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.quiet()

	const n = 8
	var wg sync.WaitGroup
	for range n {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.uc.install(testConfig(1)))
		}()
		go func() {
			defer wg.Done()
			err := f.uc.Ingest(ctx, spend(1, f.now, 10))
			if err != nil {
				assert.ErrorIs(t, err, port.ErrConfigMissing)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n*10), f.state(t, 1).SpendToDate)
	assert.Nil(t, f.uc.pending.take(1))
}
