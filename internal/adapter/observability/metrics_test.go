package observability

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

func newTestMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry(), slog.New(slog.DiscardHandler))
}

func TestDecisionPublished(t *testing.T) {
	m := newTestMetrics()
	d := domain.Decision{CampaignID: 7, Multiplier: 1.1, Throttle: 0.55,
		Reason: domain.ReasonUnderspend, Status: domain.StatusActive}
	m.DecisionPublished(d)
	m.DecisionPublished(d)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.decisions.WithLabelValues("UNDERSPEND_CORRECTION", "ACTIVE")))
	assert.Equal(t, 1.1, testutil.ToFloat64(m.multiplier.WithLabelValues("7")))
	assert.Equal(t, 0.55, testutil.ToFloat64(m.throttle.WithLabelValues("7")))
}

func TestCampaignRemovedDropsSeries(t *testing.T) {
	m := newTestMetrics()
	for _, id := range []int64{7, 8} {
		d := domain.Decision{CampaignID: id, Multiplier: 1, Throttle: 0.5,
			Reason: domain.ReasonAnomalyHold, Status: domain.StatusPaused}
		m.DecisionPublished(d)
		m.AnomalyHold(d)
		m.EngineFault(id, assert.AnError)
	}

	m.CampaignRemoved(7)
	for _, c := range []prometheus.Collector{m.multiplier, m.throttle, m.anomalyHolds, m.engineFaults} {
		assert.Equal(t, 1, testutil.CollectAndCount(c))
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.engineFaults.WithLabelValues("8")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.anomalyHolds.WithLabelValues("8")))
}

func TestEventRejectedCauses(t *testing.T) {
	m := newTestMetrics()
	m.EventRejected(1, fmt.Errorf("%w: campaign 1", port.ErrStaleEvent))
	m.EventRejected(1, fmt.Errorf("%w: campaign 1", port.ErrStaleEvent))
	m.EventRejected(2, port.ErrConfigMissing)
	m.EventRejected(3, fmt.Errorf("wrapped: %w", port.ErrInvalidEvent))

	expected := `
# HELP pacing_events_rejected_total Spend events ignored or dropped, by cause.
# TYPE pacing_events_rejected_total counter
pacing_events_rejected_total{cause="config_missing"} 1
pacing_events_rejected_total{cause="invalid"} 1
pacing_events_rejected_total{cause="stale"} 2
`
	require.NoError(t, testutil.CollectAndCompare(m.eventsRejected, strings.NewReader(expected)))
}

func TestTickMetrics(t *testing.T) {
	m := newTestMetrics()
	m.TickCompleted(port.TickReport{Duration: 30 * time.Millisecond, Campaigns: 4, Evaluated: 3, Faulted: 1})
	m.TickSkipped()
	m.EngineFault(9, assert.AnError)
	m.AnomalyHold(domain.Decision{CampaignID: 9})
	m.DeliveryFailed(domain.Decision{}, assert.AnError)

	assert.Equal(t, 1, testutil.CollectAndCount(m.tickDuration))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.tickCampaigns.WithLabelValues("evaluated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tickCampaigns.WithLabelValues("faulted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticksSkipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.engineFaults.WithLabelValues("9")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.anomalyHolds.WithLabelValues("9")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deliveryFailures))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := newTestMetrics()
	m.TickSkipped()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pacing_ticks_skipped_total 1")
}
