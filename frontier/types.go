// Package frontier defines options, policies and errors for search frontiers.
package frontier

import (
	"errors"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrDuplicateState is returned by Add when the frontier already holds a node
// for the same state and the policy is RejectDuplicates.
var ErrDuplicateState = errors.New("frontier: state already in frontier")

// DuplicatePolicy decides what Add does with a state that is already queued.
type DuplicatePolicy int

const (
	// AllowDuplicates queues every node, even for repeated states.
	AllowDuplicates DuplicatePolicy = iota
	// RejectDuplicates refuses a second node for a queued state.
	RejectDuplicates
	// ReplaceIfCheaper keeps one node per state: the one with the lower path cost.
	ReplaceIfCheaper
)

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case RejectDuplicates:
		return "reject"
	case ReplaceIfCheaper:
		return "replace-if-cheaper"
	default:
		return "allow"
	}
}

// Eval scores a node; the priority frontier pops the lowest score first.
type Eval[S comparable, A comparable] func(n *core.Node[S, A]) float64

// Option configures a Frontier.
type Option func(*Options)

// Options holds frontier construction parameters.
type Options struct {
	// Policy is the duplicate-state policy. Default AllowDuplicates.
	Policy DuplicatePolicy

	// Capacity pre-sizes the backing storage. Default 0.
	Capacity int
}

// DefaultOptions returns AllowDuplicates with no pre-sizing.
func DefaultOptions() Options {
	return Options{Policy: AllowDuplicates}
}

// WithDuplicatePolicy selects how repeated states are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithCapacity pre-sizes the queue. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}
