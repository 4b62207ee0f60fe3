// Package metrics exposes the Prometheus metrics the ratiocycle demo
// command records while solving a parametric cycle-ratio problem.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Metrics holds every Prometheus metric the solver and finder report.
type Metrics struct {
	// Finder metrics
	RelaxPasses     prometheus.Counter
	CyclesFound     prometheus.Counter
	BudgetExhausted prometheus.Counter

	// Solver metrics
	OuterIterations prometheus.Counter
	SolveLatency    prometheus.Histogram
	SolverRatio     prometheus.Gauge

	// Graph metrics
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge

	server *http.Server
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		RelaxPasses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ratiocycle_relax_passes_total",
				Help: "Total number of Bellman-Ford relax passes performed",
			},
		),
		CyclesFound: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ratiocycle_cycles_found_total",
				Help: "Total number of negative cycles yielded by Howard's method",
			},
		),
		BudgetExhausted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ratiocycle_budget_exhausted_total",
				Help: "Total number of times a Howard stream or the solver's outer loop hit its iteration budget without converging",
			},
		),
		OuterIterations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ratiocycle_solver_outer_iterations_total",
				Help: "Total number of outer ratio-tightening iterations performed by the solver",
			},
		),
		SolveLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ratiocycle_solve_latency_seconds",
				Help:    "Time to compute the extremal cycle ratio of a graph",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3.3s
			},
		),
		SolverRatio: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ratiocycle_solver_ratio",
				Help: "The extremal cycle ratio found by the most recent solve",
			},
		),
		GraphNodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ratiocycle_graph_nodes",
				Help: "Number of nodes in the currently loaded graph",
			},
		),
		GraphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ratiocycle_graph_edges",
				Help: "Number of edges in the currently loaded graph",
			},
		),
	}

	prometheus.MustRegister(
		m.RelaxPasses,
		m.CyclesFound,
		m.BudgetExhausted,
		m.OuterIterations,
		m.SolveLatency,
		m.SolverRatio,
		m.GraphNodes,
		m.GraphEdges,
	)

	return m
}

// StartServer starts the HTTP server for Prometheus metrics.
func (m *Metrics) StartServer(port int, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	m.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		log.Info().Int("port", port).Str("path", path).Msg("Starting metrics server")
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Metrics server error")
		}
	}()

	return nil
}

// Shutdown gracefully stops the metrics server.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m.server != nil {
		return m.server.Shutdown(ctx)
	}
	return nil
}

// RecordRelaxPass adds n to the relax-pass counter.
func (m *Metrics) RecordRelaxPass(n int) {
	m.RelaxPasses.Add(float64(n))
}

// RecordCycleFound increments the cycles-found counter.
func (m *Metrics) RecordCycleFound() {
	m.CyclesFound.Inc()
}

// RecordBudgetExhausted increments the budget-exhausted counter.
func (m *Metrics) RecordBudgetExhausted() {
	m.BudgetExhausted.Inc()
}

// RecordOuterIteration increments the solver's outer-iteration counter.
func (m *Metrics) RecordOuterIteration() {
	m.OuterIterations.Inc()
}

// RecordSolveLatency records the wall-clock time a full solve took.
func (m *Metrics) RecordSolveLatency(d time.Duration) {
	m.SolveLatency.Observe(d.Seconds())
}

// SetSolverRatio records the extremal ratio the most recent solve found.
func (m *Metrics) SetSolverRatio(r float64) {
	m.SolverRatio.Set(r)
}

// SetGraphStats updates the graph node and edge gauges.
func (m *Metrics) SetGraphStats(nodes, edges int) {
	m.GraphNodes.Set(float64(nodes))
	m.GraphEdges.Set(float64(edges))
}
