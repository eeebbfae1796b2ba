package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/core"
)

// Labels name the algorithms in logs and metrics.
const (
	LabelHillClimbing       = "hill-climbing"
	LabelSimulatedAnnealing = "simulated-annealing"
	LabelGenetic            = "genetic"
)

// Metric keys recorded by Genetic.
const (
	MetricGenerations    = "generations"
	MetricPopulationSize = "populationSize"
)

const (
	// DefaultMutationRate is the chance that a child gets one random gene.
	DefaultMutationRate = 0.15

	// DefaultGenerations bounds Genetic when MaxSteps is 0.
	DefaultGenerations = 1000
)

// Sentinel errors for local search.
var (
	// ErrNilHeuristic is returned when a search gets a nil heuristic.
	ErrNilHeuristic = errors.New("local: heuristic is nil")

	// ErrNilSchedule is returned when SimulatedAnnealing gets a nil schedule.
	ErrNilSchedule = errors.New("local: schedule is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("local: invalid option supplied")

	// ErrBadPopulation indicates an empty population, an empty individual or
	// individuals of different lengths.
	ErrBadPopulation = errors.New("local: population needs individuals of one non-zero length")

	// ErrEmptyAlphabet is returned when Genetic gets no gene values to mutate to.
	ErrEmptyAlphabet = errors.New("local: alphabet is empty")

	// ErrNilFitness is returned when Genetic gets a nil fitness function.
	ErrNilFitness = errors.New("local: fitness function is nil")

	// ErrNegativeFitness indicates a fitness value below 0 or NaN.
	ErrNegativeFitness = errors.New("local: fitness must be non-negative")
)

// Evolution is the result of a genetic algorithm run.
type Evolution[G comparable] struct {
	// Status is Solved when Best passes the goal test and Cutoff when the
	// generation limit ran out first.
	Status core.Status

	// Best is the fittest individual of the last generation, first on ties.
	Best []G

	// Fitness is the fitness of Best.
	Fitness float64

	// Generations counts the populations bred after the initial one.
	Generations int

	// Metrics: generations, populationSize and nodeValue (the best fitness).
	Metrics core.Metrics
}

// Solved reports whether the best individual passed the goal test.
func (e *Evolution[G]) Solved() bool { return e.Status == core.StatusSolved }

// Outcome is the result of a local search. The embedded Result is Solved
// when the last state reached is a goal; Final is that last node either way.
type Outcome[S comparable, A comparable] struct {
	*core.Result[S, A]

	// Final is the node the search stopped at.
	Final *core.Node[S, A]
}

// Schedule maps a time step to a temperature. A temperature of 0 ends
// simulated annealing.
type Schedule interface {
	Temperature(step int) float64
}

// ScheduleFunc adapts a plain function to Schedule.
type ScheduleFunc func(step int) float64

// Temperature calls f(step).
func (f ScheduleFunc) Temperature(step int) float64 { return f(step) }

// ExpSchedule cools exponentially: K·e^(-Lambda·t) for t < Limit, then 0.
type ExpSchedule struct {
	K      float64
	Lambda float64
	Limit  int
}

// DefaultSchedule returns ExpSchedule{K: 20, Lambda: 0.045, Limit: 100}.
func DefaultSchedule() ExpSchedule {
	return ExpSchedule{K: 20, Lambda: 0.045, Limit: 100}
}

// Temperature implements Schedule.
func (s ExpSchedule) Temperature(step int) float64 {
	if step < s.Limit {
		return s.K * math.Exp(-s.Lambda*float64(step))
	}

	return 0
}

// Option configures local search via functional arguments.
type Option func(*Options)

// Options holds local search parameters.
type Options struct {
	// Ctx allows cancellation; polled once per step.
	Ctx context.Context

	// Rand drives random choices. Default: a source seeded with 1, so runs
	// are reproducible unless a different source is supplied.
	Rand *rand.Rand

	// MaxSteps, if > 0, stops with core.StatusCutoff after that many steps
	// unless the current state is a goal. 0 means no limit, except for
	// Genetic which then stops after DefaultGenerations.
	MaxSteps int

	// MutationRate is the probability that Genetic mutates a child.
	// Default DefaultMutationRate.
	MutationRate float64

	// Logger receives a Debug entry when a run finishes.
	Logger logrus.FieldLogger

	// OnStep is called with the current state and its value before each step.
	OnStep func(state any, value float64)

	err error
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultOptions returns background context, a source seeded with 1, no
// step limit, DefaultMutationRate, a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Rand:         rand.New(rand.NewSource(1)),
		MutationRate: DefaultMutationRate,
		Logger:       discard,
		OnStep:       func(any, float64) {},
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand sets the random source. nil is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithMaxSteps caps the number of steps.
//
//	n > 0:  stop with core.StatusCutoff after n steps
//	n == 0: explicit no limit
//	n < 0:  ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMutationRate sets the per-child mutation probability of Genetic.
//
//	0 <= p <= 1: used as is
//	otherwise:   ErrOptionViolation
func WithMutationRate(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 || math.IsNaN(p) {
			o.err = fmt.Errorf("%w: MutationRate must lie in [0,1] (%g)", ErrOptionViolation, p)
			return
		}
		o.MutationRate = p
	}
}

// WithLogger routes run logs to l. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a hook called before every step.
func WithOnStep(fn func(state any, value float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
