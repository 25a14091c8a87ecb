package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsAPI forwards every report to an inner API and additionally counts
// broken/warning reports and records counts as prometheus metrics.
type MetricsAPI struct {
	inner   API
	reports *prometheus.CounterVec
	counts  *prometheus.GaugeVec
}

// NewMetricsAPI registers the report metrics on reg and wraps inner.
func NewMetricsAPI(inner API, reg prometheus.Registerer) (MetricsAPI, error) {
	reports := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcmatome_reports_total",
			Help: "Total number of telemetry reports, labeled by level and report id.",
		},
		[]string{"level", "id"},
	)
	counts := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gcmatome_count",
			Help: "Latest value reported through ReportCount, labeled by report id.",
		},
		[]string{"id"},
	)
	if err := reg.Register(reports); err != nil {
		return MetricsAPI{}, err
	}
	if err := reg.Register(counts); err != nil {
		return MetricsAPI{}, err
	}
	return MetricsAPI{inner: inner, reports: reports, counts: counts}, nil
}

func (m MetricsAPI) ReportBroken(id string, params ...any) {
	m.reports.WithLabelValues("broken", id).Inc()
	m.inner.ReportBroken(id, params...)
}

func (m MetricsAPI) ReportWarning(id string, params ...any) {
	m.reports.WithLabelValues("warning", id).Inc()
	m.inner.ReportWarning(id, params...)
}

func (m MetricsAPI) ReportDebug(msg string, params ...any) {
	m.inner.ReportDebug(msg, params...)
}

func (m MetricsAPI) ReportCount(id string, count int64) {
	m.counts.WithLabelValues(id).Set(float64(count))
	m.inner.ReportCount(id, count)
}

// MetricsHandler serves the metrics gathered by g in the prometheus text format.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
