package instrument

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvsearch/core"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "lvsearch"

// StatusError labels runs that returned an error instead of a result.
const StatusError = "error"

// ErrNilRegisterer is returned when NewRecorder gets a nil Registerer.
var ErrNilRegisterer = errors.New("instrument: registerer is nil")

// Option configures a Recorder.
type Option func(*options)

type options struct {
	namespace string
	constLabs prometheus.Labels
}

// WithNamespace replaces DefaultNamespace. Empty is ignored.
func WithNamespace(ns string) Option {
	return func(o *options) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithConstLabels attaches fixed labels to every collector.
func WithConstLabels(l prometheus.Labels) Option {
	return func(o *options) { o.constLabs = l }
}

// Recorder turns search results into Prometheus samples. It is safe for
// concurrent use.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded *prometheus.CounterVec
	pathCost *prometheus.HistogramVec
	queue    *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg. Registering
// two Recorders with the same namespace on one registry fails with the
// registry's prometheus.AlreadyRegisteredError.
func NewRecorder(reg prometheus.Registerer, opts ...Option) (*Recorder, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	o := options{namespace: DefaultNamespace}
	for _, opt := range opts {
		opt(&o)
	}

	byAlgorithm := []string{"algorithm"}
	r := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "searches_total",
			Help:        "Searches run, by algorithm and outcome.",
			ConstLabels: o.constLabs,
		}, []string{"algorithm", "status"}),
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "nodes_expanded_total",
			Help:        "Nodes expanded across all searches.",
			ConstLabels: o.constLabs,
		}, byAlgorithm),
		pathCost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   o.namespace,
			Name:        "path_cost",
			Help:        "Cost of the solutions found.",
			ConstLabels: o.constLabs,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 12),
		}, byAlgorithm),
		queue: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   o.namespace,
			Name:        "max_queue_size",
			Help:        "Largest frontier size reached per search.",
			ConstLabels: o.constLabs,
			Buckets:     prometheus.ExponentialBuckets(1, 4, 10),
		}, byAlgorithm),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   o.namespace,
			Name:        "search_duration_seconds",
			Help:        "Wall time per search.",
			ConstLabels: o.constLabs,
			Buckets:     prometheus.DefBuckets,
		}, byAlgorithm),
	}
	for _, c := range []prometheus.Collector{r.searches, r.expanded, r.pathCost, r.queue, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("instrument: register collectors: %w", err)
		}
	}

	return r, nil
}

// Observe records one finished search. m may be nil.
//
// pathCost is observed for solved runs only, and maxQueueSize only when the
// algorithm reported it.
func (r *Recorder) Observe(algorithm string, status core.Status, m core.Metrics, elapsed time.Duration) {
	r.searches.WithLabelValues(algorithm, status.String()).Inc()
	r.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if m == nil {
		return
	}
	r.expanded.WithLabelValues(algorithm).Add(m.Get(core.MetricNodesExpanded))
	if status == core.StatusSolved {
		r.pathCost.WithLabelValues(algorithm).Observe(m.Get(core.MetricPathCost))
	}
	if v, ok := m[core.MetricMaxQueueSize]; ok {
		r.queue.WithLabelValues(algorithm).Observe(v)
	}
}

// ObserveError records a search that returned an error.
func (r *Recorder) ObserveError(algorithm string, elapsed time.Duration) {
	r.searches.WithLabelValues(algorithm, StatusError).Inc()
	r.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// Track runs search, records its outcome under algorithm and passes the
// result through. A nil Recorder only runs search.
func Track[S comparable, A comparable](r *Recorder, algorithm string, search func() (*core.Result[S, A], error)) (*core.Result[S, A], error) {
	start := time.Now()
	res, err := search()
	if r == nil {
		return res, err
	}
	elapsed := time.Since(start)
	if err != nil || res == nil {
		r.ObserveError(algorithm, elapsed)
		return res, err
	}
	r.Observe(algorithm, res.Status, res.Metrics, elapsed)

	return res, nil
}

// WriteText gathers g and writes every metric family in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("instrument: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("instrument: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
