// Package metrics instruments mix solves with Prometheus collectors.
package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/liquify/mix"
)

const (
	StrategyLabel = "strategy"
	OutcomeLabel  = "outcome"

	// Outcome label values.
	Match       = "match"
	Approximate = "approximate"
	Infeasible  = "infeasible"
	Failed      = "error"
)

// Recorder holds the solve collectors. Create one per registry with New.
type Recorder struct {
	solves      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	generations prometheus.Histogram
	nodes       prometheus.Histogram
}

// New creates the collectors and registers them with reg.
// It panics if they are already registered, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "liquify_solves_total",
				Help: "Number of solve calls by strategy and outcome.",
			},
			[]string{StrategyLabel, OutcomeLabel},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "liquify_solve_duration_seconds",
				Help:    "Wall time of solve calls.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{StrategyLabel},
		),
		generations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "liquify_generations",
				Help:    "Generations run by the evolutionary solver.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		nodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "liquify_exact_nodes",
				Help:    "Search frames explored by the exact solver.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 12),
			},
		),
	}
	reg.MustRegister(r.solves, r.duration, r.generations, r.nodes)
	return r
}

// Observe records one solve call.
func (r *Recorder) Observe(res mix.Result, err error, elapsed time.Duration) {
	strategy := res.Strategy.String()
	r.solves.WithLabelValues(strategy, outcome(res, err)).Inc()
	r.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	if res.Stats.Nodes > 0 {
		r.nodes.Observe(float64(res.Stats.Nodes))
	}
	if res.Strategy == mix.StrategyEvolutionary && err == nil {
		r.generations.Observe(float64(res.Stats.Generations))
	}
}

func outcome(res mix.Result, err error) string {
	switch {
	case errors.Is(err, mix.ErrInfeasible):
		return Infeasible
	case err != nil:
		return Failed
	case res.WithinTolerance:
		return Match
	default:
		return Approximate
	}
}

// Write gathers g and writes the text exposition format to w.
func Write(w io.Writer, g prometheus.Gatherer) error {
	var (
		mfs []*dto.MetricFamily
		err error
	)
	if mfs, err = g.Gather(); err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
