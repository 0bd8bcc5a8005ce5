// Package metrics backs the observability hooks with Prometheus collectors.
//
// Register the hooks once, run walks and renders, then gather the registry:
//
//	reg := prometheus.NewRegistry()
//	h := metrics.New(reg)
//	observability.SetExploreHooks(h)
//	observability.SetRenderHooks(h)
//	defer observability.Reset()
//
//	// ... explore.Walk, nodelink.RenderSVGContext ...
//
//	err := prometheus.WriteToTextfile("pants.prom", reg)
//
// All collectors live under the "pants" namespace and are safe for
// concurrent use.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/pants/pkg/observability"
)

const namespace = "pants"

// Result label values.
const (
	resultOK    = "ok"
	resultError = "error"
)

// Hooks records walk and render events as Prometheus metrics.
type Hooks struct {
	// WalksTotal counts finished walks by result (ok, error).
	WalksTotal *prometheus.CounterVec

	// WalkStates observes the number of states recorded per walk.
	WalkStates prometheus.Histogram

	// WalkDuration observes walk latency in seconds.
	WalkDuration prometheus.Histogram

	// Frontier observes the size of each newly discovered layer.
	Frontier prometheus.Histogram

	// DeepestLayer is the last depth expanded by the most recent walk.
	DeepestLayer prometheus.Gauge

	// RendersTotal counts renders by format and result.
	RendersTotal *prometheus.CounterVec

	// RenderBytes observes output size by format.
	RenderBytes *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Hooks {
	f := promauto.With(reg)
	return &Hooks{
		WalksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "walks_total",
			Help:      "Finished walks by result.",
		}, []string{"result"}),
		WalkStates: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "states",
			Help:      "Distinct states recorded per walk.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		WalkDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "duration_seconds",
			Help:      "Walk duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		Frontier: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "frontier_states",
			Help:      "States discovered per layer.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		DeepestLayer: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "explore",
			Name:      "deepest_layer",
			Help:      "Last depth expanded by the most recent walk.",
		}),
		RendersTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "total",
			Help:      "Renders by format and result.",
		}, []string{"format", "result"}),
		RenderBytes: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "bytes",
			Help:      "Rendered output size in bytes.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}, []string{"format"}),
	}
}

func (h *Hooks) OnExploreStart(context.Context, string, int) {}

func (h *Hooks) OnDepthComplete(_ context.Context, depth, frontier int) {
	h.DeepestLayer.Set(float64(depth))
	if frontier > 0 {
		h.Frontier.Observe(float64(frontier))
	}
}

func (h *Hooks) OnExploreComplete(_ context.Context, states int, d time.Duration, err error) {
	if err != nil {
		h.WalksTotal.WithLabelValues(resultError).Inc()
		return
	}
	h.WalksTotal.WithLabelValues(resultOK).Inc()
	h.WalkStates.Observe(float64(states))
	h.WalkDuration.Observe(d.Seconds())
}

func (h *Hooks) OnRenderStart(context.Context, string, int) {}

func (h *Hooks) OnRenderComplete(_ context.Context, format string, size int, _ time.Duration, err error) {
	if err != nil {
		h.RendersTotal.WithLabelValues(format, resultError).Inc()
		return
	}
	h.RendersTotal.WithLabelValues(format, resultOK).Inc()
	h.RenderBytes.WithLabelValues(format).Observe(float64(size))
}

var (
	_ observability.ExploreHooks = (*Hooks)(nil)
	_ observability.RenderHooks  = (*Hooks)(nil)
)
