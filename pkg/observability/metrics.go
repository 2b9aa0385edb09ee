package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors updated by the engine hooks.
type Metrics struct {
	nodes         *prometheus.CounterVec
	relationships *prometheus.CounterVec
	traversal     *prometheus.HistogramVec
	gatherer      prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses a fresh private registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orthology_nodes_classified_total",
				Help: "Total number of internal nodes classified, by event",
			},
			[]string{"event"},
		),
		relationships: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orthology_relationships_total",
				Help: "Total number of OTU pairs recorded, by relationship",
			},
			[]string{"relationship"},
		),
		traversal: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orthology_traversal_seconds",
				Help:    "Duration of complete tree traversals",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"mode"},
		),
	}

	for _, c := range []prometheus.Collector{m.nodes, m.relationships, m.traversal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	} else {
		m.gatherer = prometheus.DefaultGatherer
	}
	return m, nil
}

// Hooks returns lifecycle hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeClassified: func(_ context.Context, e *domain.NodeEvent) {
			m.nodes.WithLabelValues(e.Event.String()).Inc()
		},
		OnTraversalComplete: func(_ context.Context, e *domain.TraversalEvent) {
			m.traversal.WithLabelValues(string(e.Mode)).Observe(e.Duration.Seconds())
			for rel, n := range e.Relationships {
				if n > 0 {
					m.relationships.WithLabelValues(rel.String()).Add(float64(n))
				}
			}
		},
	}
}

// Handler serves the registry the metrics were registered with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Chain merges several hook sets into one. Nil callbacks are skipped.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var nodeFns []func(context.Context, *domain.NodeEvent)
	var doneFns []func(context.Context, *domain.TraversalEvent)
	for _, h := range hooks {
		if h.OnNodeClassified != nil {
			nodeFns = append(nodeFns, h.OnNodeClassified)
		}
		if h.OnTraversalComplete != nil {
			doneFns = append(doneFns, h.OnTraversalComplete)
		}
	}

	var out domain.LifecycleHooks
	if len(nodeFns) > 0 {
		out.OnNodeClassified = func(ctx context.Context, e *domain.NodeEvent) {
			for _, fn := range nodeFns {
				fn(ctx, e)
			}
		}
	}
	if len(doneFns) > 0 {
		out.OnTraversalComplete = func(ctx context.Context, e *domain.TraversalEvent) {
			for _, fn := range doneFns {
				fn(ctx, e)
			}
		}
	}
	return out
}
