package observability

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

const namespace = "pacing"

// Metrics is the port.Observer backed by Prometheus collectors. Faults and
// holds are also logged, since they need an operator's attention.
type Metrics struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer

	decisions        *prometheus.CounterVec
	multiplier       *prometheus.GaugeVec
	throttle         *prometheus.GaugeVec
	anomalyHolds     *prometheus.CounterVec
	engineFaults     *prometheus.CounterVec
	eventsRejected   *prometheus.CounterVec
	deliveryFailures prometheus.Counter
	tickDuration     prometheus.Histogram
	tickCampaigns    *prometheus.GaugeVec
	ticksSkipped     prometheus.Counter
}

// NewMetrics registers the pacing collectors with reg. Passing a fresh
// prometheus.NewRegistry keeps tests independent of the global registry.
func NewMetrics(reg *prometheus.Registry, logger *slog.Logger) *Metrics {
	m := &Metrics{
		logger:   logger,
		gatherer: reg,
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Pacing decisions published, by reason and status.",
		}, []string{"reason", "status"}),
		multiplier: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bid_multiplier",
			Help:      "Current bid multiplier per campaign.",
		}, []string{"campaign_id"}),
		throttle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "throttle",
			Help:      "Current throttle per campaign.",
		}, []string{"campaign_id"}),
		anomalyHolds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "anomaly_holds_total",
			Help:      "Anomaly holds entered per campaign.",
		}, []string{"campaign_id"}),
		engineFaults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_faults_total",
			Help:      "Failed pacing evaluations per campaign.",
		}, []string{"campaign_id"}),
		eventsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_rejected_total",
			Help:      "Spend events ignored or dropped, by cause.",
		}, []string{"cause"}),
		deliveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_failures_total",
			Help:      "Decisions the bid surface did not accept.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time of scheduler ticks.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}),
		tickCampaigns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tick_campaigns",
			Help:      "Campaigns handled by the last tick, by outcome.",
		}, []string{"outcome"}),
		ticksSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_skipped_total",
			Help:      "Ticks skipped because the previous tick was still running.",
		}),
	}
	reg.MustRegister(
		m.decisions, m.multiplier, m.throttle, m.anomalyHolds, m.engineFaults,
		m.eventsRejected, m.deliveryFailures, m.tickDuration, m.tickCampaigns, m.ticksSkipped,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func campaignLabel(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (m *Metrics) DecisionPublished(d domain.Decision) {
	m.decisions.WithLabelValues(string(d.Reason), string(d.Status)).Inc()
	id := campaignLabel(d.CampaignID)
	m.multiplier.WithLabelValues(id).Set(d.Multiplier)
	m.throttle.WithLabelValues(id).Set(d.Throttle)
}

func (m *Metrics) AnomalyHold(d domain.Decision) {
	m.anomalyHolds.WithLabelValues(campaignLabel(d.CampaignID)).Inc()
}

func (m *Metrics) EngineFault(campaignID int64, _ error) {
	m.engineFaults.WithLabelValues(campaignLabel(campaignID)).Inc()
}

func (m *Metrics) EventRejected(_ int64, err error) {
	m.eventsRejected.WithLabelValues(rejectCause(err)).Inc()
}

func (m *Metrics) DeliveryFailed(domain.Decision, error) {
	m.deliveryFailures.Inc()
}

func (m *Metrics) TickCompleted(r port.TickReport) {
	m.tickDuration.Observe(r.Duration.Seconds())
	m.tickCampaigns.WithLabelValues("evaluated").Set(float64(r.Evaluated))
	m.tickCampaigns.WithLabelValues("faulted").Set(float64(r.Faulted))
	m.tickCampaigns.WithLabelValues("skipped").Set(float64(r.Skipped))
	m.tickCampaigns.WithLabelValues("expired").Set(float64(r.Expired))
	if r.Faulted > 0 {
		m.logger.Warn("tick completed with faults",
			slog.Int("campaigns", r.Campaigns),
			slog.Int("faulted", r.Faulted),
			slog.Duration("duration", r.Duration))
	}
}

func (m *Metrics) TickSkipped() {
	m.ticksSkipped.Inc()
}

// CampaignRemoved drops the per-campaign series of a campaign that stopped
// pacing.
func (m *Metrics) CampaignRemoved(campaignID int64) {
	id := campaignLabel(campaignID)
	m.multiplier.DeleteLabelValues(id)
	m.throttle.DeleteLabelValues(id)
	m.anomalyHolds.DeleteLabelValues(id)
	m.engineFaults.DeleteLabelValues(id)
}

func rejectCause(err error) string {
	switch {
	case errors.Is(err, port.ErrStaleEvent):
		return "stale"
	case errors.Is(err, port.ErrUnknownCampaign):
		return "unknown_campaign"
	case errors.Is(err, port.ErrConfigMissing):
		return "config_missing"
	case errors.Is(err, port.ErrInvalidEvent):
		return "invalid"
	default:
		return "other"
	}
}
