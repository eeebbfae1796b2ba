// Package core declares Problem, sentinel errors and the problem-level helpers
// shared by every search algorithm.
package core

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for core operations.
var (
	// ErrNilProblem is returned when a nil *Problem is passed to a search.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrIncompleteProblem indicates that Actions, Result or Goal is missing.
	ErrIncompleteProblem = errors.New("core: problem is missing a required function")

	// ErrInvalidAction indicates Result was asked to apply an action that
	// Actions did not offer for that state.
	ErrInvalidAction = errors.New("core: invalid action for state")
)

// Problem describes a search task over states S and actions A.
//
// Actions and Result must agree: every action returned by Actions(s) must be
// accepted by Result(s, ·). Result implementations should return an error
// wrapping ErrInvalidAction for anything else. StepCost may be nil, in which
// case every step costs 1. A Problem must not be mutated while a search runs.
type Problem[S comparable, A comparable] struct {
	// Initial is the state the search starts from.
	Initial S

	// Actions lists the actions applicable in s, in the order children are generated.
	Actions func(s S) []A

	// Result is the deterministic transition model.
	Result func(s S, a A) (S, error)

	// Goal reports whether s satisfies the goal test.
	Goal func(s S) bool

	// StepCost returns the non-negative cost of moving from s to next via a.
	StepCost func(s S, a A, next S) float64
}

// Validate checks that p is non-nil and that every required function is set.
func (p *Problem[S, A]) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	switch {
	case p.Actions == nil:
		return fmt.Errorf("%w: Actions", ErrIncompleteProblem)
	case p.Result == nil:
		return fmt.Errorf("%w: Result", ErrIncompleteProblem)
	case p.Goal == nil:
		return fmt.Errorf("%w: Goal", ErrIncompleteProblem)
	}

	return nil
}

// IsGoal reports whether s is a goal state.
func (p *Problem[S, A]) IsGoal(s S) bool { return p.Goal(s) }

// Cost returns the step cost of s --a--> next, defaulting to 1.
func (p *Problem[S, A]) Cost(s S, a A, next S) float64 {
	if p.StepCost == nil {
		return 1
	}

	return p.StepCost(s, a, next)
}

// Apply returns the state reached by taking a in s. Unlike calling Result
// directly, it first checks that a is one of Actions(s) and fails with
// ErrInvalidAction otherwise.
func (p *Problem[S, A]) Apply(s S, a A) (S, error) {
	if !slices.Contains(p.Actions(s), a) {
		var zero S
		return zero, fmt.Errorf("%w: %v in %v", ErrInvalidAction, a, s)
	}

	return p.Result(s, a)
}
