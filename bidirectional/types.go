// Package bidirectional defines options, errors and the predecessor model for
// bidirectional breadth-first search.
package bidirectional

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Label names bidirectional search in logs and metrics.
const Label = "bidirectional"

// Sentinel errors for bidirectional search.
var (
	// ErrNilPredecessors is returned when Search gets a nil Predecessors function.
	ErrNilPredecessors = errors.New("bidirectional: predecessors function is nil")

	// ErrGoalMismatch indicates the goal state does not pass the problem's goal test.
	ErrGoalMismatch = errors.New("bidirectional: goal state fails the goal test")

	// ErrInconsistentPredecessors indicates a Step that the forward model
	// does not reproduce: the action is not applicable in Step.From, or it
	// leads somewhere else.
	ErrInconsistentPredecessors = errors.New("bidirectional: predecessor step disagrees with the forward model")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bidirectional: invalid option supplied")
)

// Step is one reversed transition: applying Action in From leads to the
// state the Step was listed for.
type Step[S comparable, A comparable] struct {
	From   S
	Action A
}

// Predecessors lists every Step whose forward application ends in s.
// The order of the result fixes the order of the backward search.
type Predecessors[S comparable, A comparable] func(s S) []Step[S, A]

// Option configures bidirectional search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the bidirectional search parameters.
type Options struct {
	// Ctx allows cancellation; polled once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, stops with core.StatusCutoff after that many
	// expansions summed over both directions. 0 means no limit.
	MaxExpansions int

	// Logger receives a Debug entry when a run finishes.
	Logger logrus.FieldLogger

	// OnExpand is called with the state and depth of every node expanded, in
	// either direction. Backward depths count steps from the goal.
	OnExpand func(state any, depth int)

	err error
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultOptions returns background context, no expansion limit, a
// discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   discard,
		OnExpand: func(any, int) {},
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

// WithMaxExpansions caps the number of expansions.
//
//	n > 0:  stop with core.StatusCutoff after n expansions
//	n == 0: explicit no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
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

// WithOnExpand registers a hook called for every expanded node.
func WithOnExpand(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
