// Package ucs defines options and errors for uniform-cost search.
package ucs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/graphsearch"
)

// Label names uniform-cost search in logs and metrics.
const Label = "ucs"

// Sentinel errors returned by uniform-cost search.
var (
	// ErrNegativeStepCost indicates a transition with a negative or NaN cost.
	ErrNegativeStepCost = errors.New("ucs: negative step cost encountered")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value.
	ErrBadMaxCost = errors.New("ucs: MaxCost must be non-negative")
)

// Option configures uniform-cost search via functional arguments.
type Option func(*Options)

// Options holds the uniform-cost parameters.
type Options struct {
	// MaxCost bounds the path cost of generated nodes; costlier children are
	// never queued. Default +Inf.
	MaxCost float64

	// Search holds driver options (context, logger, hooks, expansion limit).
	Search []graphsearch.Option

	err error
}

// DefaultOptions returns an unbounded MaxCost and no driver options.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}

// WithMaxCost stops exploring beyond path cost max.
//
//	max >= 0: nodes with PathCost > max are dropped
//	max < 0:  ErrBadMaxCost
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxCost, max)
			return
		}
		o.MaxCost = max
	}
}

// WithSearch forwards options to the generic driver.
func WithSearch(opts ...graphsearch.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}
