package observability

import (
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the Prometheus counters and histograms for one interactive session.
type Metrics struct {
	QueriesTotal prometheus.Counter
	APIRequests  *prometheus.CounterVec   // labels: endpoint={weather,forecast}, outcome={success,network_error,status_error,parse_error}
	APIDuration  *prometheus.HistogramVec // labels: endpoint={weather,forecast}

	registry *prometheus.Registry
}

// NewMetrics creates session metrics on a private registry. Scoping the
// registry to the Metrics value keeps repeated construction (multiple tests,
// multiple sessions) from tripping duplicate registration.
func NewMetrics() *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wxterm",
			Name:      "queries_total",
			Help:      "Total city queries entered this session.",
		}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wxterm",
			Name:      "api_requests_total",
			Help:      "OpenWeatherMap requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		APIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wxterm",
			Name:      "api_request_duration_seconds",
			Help:      "OpenWeatherMap request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.QueriesTotal,
		m.APIRequests,
		m.APIDuration,
	)

	return m
}

// EndpointStats summarizes one endpoint's traffic for the stats command.
type EndpointStats struct {
	Endpoint    string
	Requests    uint64
	Failures    uint64
	MeanLatency time.Duration
}

// Snapshot is a point-in-time readout of the session counters.
type Snapshot struct {
	Queries   uint64
	Endpoints []EndpointStats // sorted by endpoint name
}

// Snapshot gathers the private registry into a renderable summary.
func (m *Metrics) Snapshot() (Snapshot, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return Snapshot{}, fmt.Errorf("gather metrics: %w", err)
	}

	snap := Snapshot{}
	byEndpoint := make(map[string]*EndpointStats)
	statsFor := func(metric *dto.Metric) *EndpointStats {
		name := labelValue(metric, "endpoint")
		st, ok := byEndpoint[name]
		if !ok {
			st = &EndpointStats{Endpoint: name}
			byEndpoint[name] = st
		}
		return st
	}

	for _, family := range families {
		switch family.GetName() {
		case "wxterm_queries_total":
			for _, metric := range family.GetMetric() {
				snap.Queries += uint64(metric.GetCounter().GetValue())
			}
		case "wxterm_api_requests_total":
			for _, metric := range family.GetMetric() {
				st := statsFor(metric)
				n := uint64(metric.GetCounter().GetValue())
				st.Requests += n
				if labelValue(metric, "outcome") != "success" {
					st.Failures += n
				}
			}
		case "wxterm_api_request_duration_seconds":
			for _, metric := range family.GetMetric() {
				st := statsFor(metric)
				h := metric.GetHistogram()
				if h.GetSampleCount() > 0 {
					mean := h.GetSampleSum() / float64(h.GetSampleCount())
					st.MeanLatency = time.Duration(mean * float64(time.Second))
				}
			}
		}
	}

	snap.Endpoints = make([]EndpointStats, 0, len(byEndpoint))
	for _, st := range byEndpoint {
		snap.Endpoints = append(snap.Endpoints, *st)
	}
	sort.Slice(snap.Endpoints, func(i, j int) bool {
		return snap.Endpoints[i].Endpoint < snap.Endpoints[j].Endpoint
	})

	return snap, nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}
