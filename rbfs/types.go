// Package rbfs defines options and errors for recursive best-first search.
package rbfs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Label names recursive best-first search in logs and metrics.
const Label = "rbfs"

// Sentinel errors for RBFS execution.
var (
	// ErrNilHeuristic is returned when Search gets a nil heuristic.
	ErrNilHeuristic = errors.New("rbfs: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rbfs: invalid option supplied")
)

// Option configures RBFS via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the RBFS parameters.
type Options struct {
	// Ctx allows cancellation; polled once per recursive call.
	Ctx context.Context

	// AvoidLoops skips successors whose state is already on the current path.
	// Without it, RBFS never terminates on a cyclic space with no reachable goal.
	AvoidLoops bool

	// MaxExpansions, if > 0, stops with core.StatusCutoff after that many
	// expansions. 0 means no limit.
	MaxExpansions int

	// Logger receives a Debug entry when a run finishes.
	Logger logrus.FieldLogger

	// OnExpand is called with the state, depth and f-limit of every node expanded.
	OnExpand func(state any, depth int, fLimit float64)

	err error
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultOptions returns background context, no loop checks, no expansion
// limit, a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   discard,
		OnExpand: func(any, int, float64) {},
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

// WithAvoidLoops prunes successors that revisit a state on the current path.
func WithAvoidLoops() Option {
	return func(o *Options) { o.AvoidLoops = true }
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
func WithOnExpand(fn func(state any, depth int, fLimit float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
