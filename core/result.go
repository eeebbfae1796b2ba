package core

// Status is the terminal state of a search run.
type Status int

const (
	// StatusFailure means the search space was exhausted without reaching a goal.
	StatusFailure Status = iota
	// StatusSolved means a goal node was found.
	StatusSolved
	// StatusCutoff means a depth or expansion limit stopped the search
	// before the space was exhausted.
	StatusCutoff
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusCutoff:
		return "cutoff"
	default:
		return "failure"
	}
}

// Result is the outcome of one search invocation.
type Result[S comparable, A comparable] struct {
	// Status tells Solved, Failure and Cutoff apart.
	Status Status

	// Goal is the goal node when Status == StatusSolved, nil otherwise.
	Goal *Node[S, A]

	// Actions is the solution; empty (non-nil) when the initial state is a goal,
	// nil unless Status == StatusSolved.
	Actions []A

	// PathCost is Goal.PathCost, or 0 without a solution.
	PathCost float64

	// Metrics collected during the run.
	Metrics Metrics
}

// Solved reports whether the search reached a goal.
func (r *Result[S, A]) Solved() bool { return r.Status == StatusSolved }

// States returns the states along the solution path, root first.
// It returns nil when there is no solution.
func (r *Result[S, A]) States() []S {
	if r.Goal == nil {
		return nil
	}
	path := r.Goal.Path()
	states := make([]S, len(path))
	for i, n := range path {
		states[i] = n.State
	}

	return states
}

// Solution wraps goal into a solved Result and records pathCost in m.
func Solution[S comparable, A comparable](goal *Node[S, A], m Metrics) *Result[S, A] {
	m.Set(MetricPathCost, goal.PathCost)

	return &Result[S, A]{
		Status:   StatusSolved,
		Goal:     goal,
		Actions:  goal.Actions(),
		PathCost: goal.PathCost,
		Metrics:  m,
	}
}

// Failure returns a Result with StatusFailure.
func Failure[S comparable, A comparable](m Metrics) *Result[S, A] {
	return &Result[S, A]{Status: StatusFailure, Metrics: m}
}

// Cutoff returns a Result with StatusCutoff.
func Cutoff[S comparable, A comparable](m Metrics) *Result[S, A] {
	return &Result[S, A]{Status: StatusCutoff, Metrics: m}
}
