package online

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for online search.
var (
	// ErrNilProblem is returned when an agent gets a nil Problem.
	ErrNilProblem = errors.New("online: problem is nil")

	// ErrIncompleteProblem is returned when Actions or Goal is missing.
	ErrIncompleteProblem = errors.New("online: problem needs Actions and Goal")

	// ErrNilHeuristic is returned when LRTA* gets a nil heuristic.
	ErrNilHeuristic = errors.New("online: heuristic is nil")

	// ErrNilAgent is returned when Run gets a nil agent or environment.
	ErrNilAgent = errors.New("online: agent and environment are required")

	// ErrBadMaxSteps is returned when Run gets maxSteps < 1.
	ErrBadMaxSteps = errors.New("online: maxSteps must be positive")

	// ErrStepLimit is returned by Run when the agent is still acting after
	// maxSteps actions.
	ErrStepLimit = errors.New("online: step limit reached")
)

// Problem is what an online agent knows in advance: the actions available in
// a state, the goal test and the cost of a transition once it has been
// observed. Unlike core.Problem it has no transition model; the agent learns
// outcomes by acting.
type Problem[S comparable, A comparable] struct {
	Actions func(S) []A
	Goal    func(S) bool

	// StepCost may be nil, in which case every step costs 1.
	StepCost func(S, A, S) float64
}

// Validate reports whether p can drive an agent.
func (p *Problem[S, A]) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if p.Actions == nil || p.Goal == nil {
		return ErrIncompleteProblem
	}

	return nil
}

func (p *Problem[S, A]) cost(s S, a A, next S) float64 {
	if p.StepCost == nil {
		return 1
	}

	return p.StepCost(s, a, next)
}

// FromProblem strips the transition model from an offline problem.
func FromProblem[S comparable, A comparable](p *core.Problem[S, A]) (*Problem[S, A], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Problem[S, A]{Actions: p.Actions, Goal: p.Goal, StepCost: p.Cost}, nil
}

// Agent picks the next action from the state it currently perceives. It
// returns false to stop, either at a goal or when it has nothing left to try.
type Agent[S comparable, A comparable] interface {
	Act(state S) (A, bool)
}

// Environment is the world an agent acts in.
type Environment[S comparable, A comparable] interface {
	// State returns the state the agent currently perceives.
	State() S
	// Execute performs a and moves the world to its next state.
	Execute(a A) error
}

// transition keys the learned result table.
type transition[S comparable, A comparable] struct {
	state  S
	action A
}

// Episode records one run of an agent in an environment.
type Episode[S comparable, A comparable] struct {
	// States holds the perceived states, starting with the initial one.
	States []S
	// Actions holds the executed actions; len(Actions) == len(States)-1.
	Actions []A
	// Stopped reports whether the agent chose to stop.
	Stopped bool
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds Run parameters.
type Options struct {
	// Ctx allows cancellation; polled once per step.
	Ctx context.Context

	// Logger receives a Debug entry per action and one when the run ends.
	Logger logrus.FieldLogger
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultOptions returns background context and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: discard,
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
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
