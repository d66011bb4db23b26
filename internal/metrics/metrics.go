// Package metrics exposes Prometheus instruments for graph operations and matching runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/bimatch/core"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Collector holds all Prometheus metrics for the service. Each Collector owns its
// registry, so tests can create as many as they like.
type Collector struct {
	registry *prometheus.Registry

	Operations   *prometheus.CounterVec
	Rejections   *prometheus.CounterVec
	MatchingSize prometheus.Gauge
	MatchingTime *prometheus.HistogramVec
	Nodes        *prometheus.GaugeVec
	Edges        *prometheus.GaugeVec
}

// NewCollector creates a collector with the given namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_operations_total",
			Help:      "Graph operations by name and outcome",
		}, []string{"op", "outcome"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_rejections_total",
			Help:      "Rejected operations by error kind",
		}, []string{"kind"}),
		MatchingSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matching_size",
			Help:      "Number of pairs in the last computed matching",
		}),
		MatchingTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "matching_duration_seconds",
			Help:      "Matching computation time",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),
		Nodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Nodes currently stored, by partition",
		}, []string{"partition"}),
		Edges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edges currently stored, by highlight",
		}, []string{"highlight"}),
	}

	registry.MustRegister(
		c.Operations,
		c.Rejections,
		c.MatchingSize,
		c.MatchingTime,
		c.Nodes,
		c.Edges,
		collectors.NewGoCollector(),
	)

	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// RecordOperation counts op; a non-nil err also counts as a rejection of its kind.
func (c *Collector) RecordOperation(op string, err error) {
	switch kind := core.KindOf(err); kind {
	case core.KindNone:
		c.Operations.WithLabelValues(op, OutcomeOK).Inc()
	case core.KindInternal, core.KindNotBipartite:
		c.Operations.WithLabelValues(op, OutcomeError).Inc()
		c.Rejections.WithLabelValues(kind.String()).Inc()
	default:
		c.Operations.WithLabelValues(op, OutcomeRejected).Inc()
		c.Rejections.WithLabelValues(kind.String()).Inc()
	}
}

// RecordMatching observes one matching run.
func (c *Collector) RecordMatching(strategy string, size int, elapsed time.Duration) {
	c.MatchingSize.Set(float64(size))
	c.MatchingTime.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// ObserveGraph refreshes the size gauges from stats.
func (c *Collector) ObserveGraph(s *core.GraphStats) {
	c.Nodes.WithLabelValues(core.PartitionA.String()).Set(float64(s.CountA))
	c.Nodes.WithLabelValues(core.PartitionB.String()).Set(float64(s.CountB))
	c.Edges.WithLabelValues(core.HighlightMatched.String()).Set(float64(s.MatchedEdges))
	c.Edges.WithLabelValues(core.HighlightNormal.String()).Set(float64(s.EdgeCount - s.MatchedEdges))
}
