// Package graphsearch provides tunable options and error definitions for the
// generic tree/graph search driver.
package graphsearch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for driver execution.
var (
	// ErrNilFrontier is returned when Search is called without a frontier.
	ErrNilFrontier = errors.New("graphsearch: frontier is nil")

	// ErrFrontierNotEmpty is returned when the supplied frontier already holds
	// nodes; the driver seeds it with the root itself.
	ErrFrontierNotEmpty = errors.New("graphsearch: frontier must start empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graphsearch: invalid option supplied")
)

// Mode selects whether repeated states are tracked.
type Mode int

const (
	// GraphSearch keeps an explored set; a state is expanded at most once.
	GraphSearch Mode = iota
	// TreeSearch keeps no explored set and may re-expand states.
	TreeSearch
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == TreeSearch {
		return "tree"
	}

	return "graph"
}

// Option configures the driver via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the driver parameters.
type Options struct {
	// Ctx allows cancellation; polled once per loop iteration.
	Ctx context.Context

	// Mode is GraphSearch (default) or TreeSearch.
	Mode Mode

	// GoalTestOnInsert tests children for the goal as they are generated
	// instead of when they are popped. Only sound for FIFO frontiers over
	// unit-cost problems, where it yields the shallowest goal early.
	GoalTestOnInsert bool

	// MaxExpansions, if > 0, stops the run with core.StatusCutoff once that
	// many nodes have been expanded. 0 means no limit.
	MaxExpansions int

	// Label names the algorithm in log entries.
	Label string

	// Logger receives Debug entries at start and finish of every run.
	Logger logrus.FieldLogger

	// OnExpand is called with the state and depth of every node expanded.
	OnExpand func(state any, depth int)

	// Prune, if set, drops generated children for which it returns true.
	// Pruned children are neither goal-tested nor queued.
	Prune func(state any, pathCost float64, depth int) bool

	err error
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultOptions returns background context, graph mode, goal test on pop,
// no expansion limit, label "search" and a logger that discards output.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Mode:     GraphSearch,
		Label:    "search",
		Logger:   discard,
		OnExpand: func(any, int) {},
	}
}

// Resolve applies opts over DefaultOptions and returns the first recorded violation.
func Resolve(opts ...Option) (Options, error) {
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

// WithMode selects GraphSearch or TreeSearch.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != GraphSearch && m != TreeSearch {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithTreeSearch is shorthand for WithMode(TreeSearch).
func WithTreeSearch() Option { return WithMode(TreeSearch) }

// WithGoalTestOnInsert moves the goal test from pop time to generation time.
func WithGoalTestOnInsert() Option {
	return func(o *Options) { o.GoalTestOnInsert = true }
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

// WithLabel names the algorithm in logs.
func WithLabel(label string) Option {
	return func(o *Options) {
		if label != "" {
			o.Label = label
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

// WithOnExpand registers a hook called for every expanded node.
func WithOnExpand(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithPrune drops every generated child for which fn returns true.
func WithPrune(fn func(state any, pathCost float64, depth int) bool) Option {
	return func(o *Options) { o.Prune = fn }
}
