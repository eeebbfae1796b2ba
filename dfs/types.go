// Package dfs defines options and errors for depth-first, depth-limited and
// iterative-deepening search.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Labels name the algorithms in logs and metrics.
const (
	Label                   = "dfs"
	LabelDepthLimited       = "depth-limited"
	LabelIterativeDeepening = "iterative-deepening"
)

// noDepthCap is the MaxDepth value meaning "no cap".
const noDepthCap = -1

// ErrOptionViolation is returned when an invalid Option or limit is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Option configures depth-first search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters shared by Search, DepthLimited and IterativeDeepening.
type Options struct {
	// Ctx allows cancellation; polled once per node visit.
	Ctx context.Context

	// MaxDepth caps the limit IterativeDeepening may reach. Once the cap is
	// exceeded without a solution the result is core.StatusFailure.
	// -1 (default) means no cap.
	MaxDepth int

	// AvoidLoops makes DepthLimited and IterativeDeepening skip children whose
	// state already appears on the path from the root.
	AvoidLoops bool

	// Logger receives Debug entries per run and per deepening iteration.
	Logger logrus.FieldLogger

	// OnVisit is called with the state and depth of every node expanded.
	OnVisit func(state any, depth int)

	err error
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultOptions returns background context, no depth cap, no loop checks,
// a discarding logger and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: noDepthCap,
		Logger:   discard,
		OnVisit:  func(any, int) {},
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

// WithMaxDepth caps iterative deepening at depth d.
//
//	d >= 0: try limits 0..d, then fail
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithAvoidLoops prunes children that would revisit a state on the current path.
func WithAvoidLoops() Option {
	return func(o *Options) { o.AvoidLoops = true }
}

// WithLogger routes run logs to l. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a hook called for every expanded node.
func WithOnVisit(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
