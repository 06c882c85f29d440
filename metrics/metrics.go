// Package metrics records search and maze statistics in a Prometheus
// registry and writes them out in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathgrid/astar"
)

// Recorder owns a private registry and the pathgrid collectors.
type Recorder struct {
	reg *prometheus.Registry

	// searches counts finished searches by terminal state
	searches *prometheus.CounterVec
	// iterations tracks expansions per search
	iterations prometheus.Histogram
	// duration tracks search wall time
	duration prometheus.Histogram
	// pathCost is the cost of the last path found
	pathCost prometheus.Gauge
	// mazes counts generated mazes
	mazes prometheus.Counter
}

// NewRecorder builds a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathgrid_searches_total",
			Help: "Finished searches by terminal state",
		}, []string{"state"}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_search_iterations",
			Help:    "Node expansions per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		}),
		pathCost: f.NewGauge(prometheus.GaugeOpts{
			Name: "pathgrid_path_cost",
			Help: "Cost of the most recent path found",
		}),
		mazes: f.NewCounter(prometheus.CounterOpts{
			Name: "pathgrid_mazes_generated_total",
			Help: "Mazes generated",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveSearch records one finished search.
func (r *Recorder) ObserveSearch(res *astar.Result, elapsed time.Duration) {
	if res == nil {
		return
	}
	r.searches.WithLabelValues(res.State.String()).Inc()
	r.iterations.Observe(float64(res.Iterations))
	r.duration.Observe(elapsed.Seconds())
	if res.Found() {
		r.pathCost.Set(res.Cost())
	}
}

// ObserveMaze records one generated maze.
func (r *Recorder) ObserveMaze() { r.mazes.Inc() }

// WriteTextfile atomically writes every metric to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
