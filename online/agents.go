package online

import "math"

// LRTAStar is a learning real-time A* agent. It keeps a table H of cost-to-go
// estimates, seeded from the heuristic the first time a state is seen, and
// after every move raises the estimate of the state it left to the best
// one-step lookahead. Ties go to the first action in Actions order.
//
// An LRTAStar is not safe for concurrent use. A nil *LRTAStar never acts.
type LRTAStar[S comparable, A comparable] struct {
	p      *Problem[S, A]
	h      func(S) float64
	result map[transition[S, A]]S
	est    map[S]float64

	prev    S
	action  A
	started bool
}

// NewLRTAStar returns an agent for p guided by h.
func NewLRTAStar[S comparable, A comparable](p *Problem[S, A], h func(S) float64) (*LRTAStar[S, A], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	a := &LRTAStar[S, A]{p: p, h: h}
	a.Reset()

	return a, nil
}

// Reset forgets everything the agent has learned.
func (a *LRTAStar[S, A]) Reset() {
	if a == nil {
		return
	}
	a.result = make(map[transition[S, A]]S)
	a.est = make(map[S]float64)
	var zeroS S
	var zeroA A
	a.prev, a.action, a.started = zeroS, zeroA, false
}

// Estimate returns the learned cost-to-go of s, if s has been visited.
func (a *LRTAStar[S, A]) Estimate(s S) (float64, bool) {
	if a == nil {
		return 0, false
	}
	v, ok := a.est[s]

	return v, ok
}

// Act implements Agent.
func (a *LRTAStar[S, A]) Act(s S) (A, bool) {
	var none A
	if a == nil {
		return none, false
	}
	if a.p.Goal(s) {
		a.prev, a.action, a.started = s, none, false
		return none, false
	}
	if _, seen := a.est[s]; !seen {
		a.est[s] = a.h(s)
	}
	if a.started {
		a.result[transition[S, A]{a.prev, a.action}] = s
		_, a.est[a.prev] = a.cheapest(a.prev)
	}

	next, cost := a.cheapest(s)
	a.prev, a.started = s, true
	if math.IsInf(cost, 1) {
		a.action, a.started = none, false
		return none, false
	}
	a.action = next

	return next, true
}

// cheapest returns the action of s minimising the LRTA* cost, and that cost.
// With no actions the cost is +Inf.
func (a *LRTAStar[S, A]) cheapest(s S) (A, float64) {
	var best A
	bestCost := math.Inf(1)
	for _, b := range a.p.Actions(s) {
		if c := a.cost(s, b); c < bestCost {
			best, bestCost = b, c
		}
	}

	return best, bestCost
}

// cost is h(s) for an untried action, otherwise the observed step cost plus
// the estimate of where it led.
func (a *LRTAStar[S, A]) cost(s S, b A) float64 {
	next, ok := a.result[transition[S, A]{s, b}]
	if !ok {
		return a.h(s)
	}

	return a.p.cost(s, b, next) + a.est[next]
}

// DFSAgent explores depth-first by acting. It tries every action of a state
// once, in Actions order, and when a state is exhausted it walks back to the
// state it was first entered from, which requires reversible actions. It
// stops at a goal or once everything reachable has been tried.
//
// A DFSAgent is not safe for concurrent use. A nil *DFSAgent never acts.
type DFSAgent[S comparable, A comparable] struct {
	p             *Problem[S, A]
	result        map[transition[S, A]]S
	untried       map[S][]A
	unbacktracked map[S][]S

	prev    S
	action  A
	started bool
}

// NewDFSAgent returns an online depth-first agent for p.
func NewDFSAgent[S comparable, A comparable](p *Problem[S, A]) (*DFSAgent[S, A], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	a := &DFSAgent[S, A]{p: p}
	a.Reset()

	return a, nil
}

// Reset forgets everything the agent has learned.
func (a *DFSAgent[S, A]) Reset() {
	if a == nil {
		return
	}
	a.result = make(map[transition[S, A]]S)
	a.untried = make(map[S][]A)
	a.unbacktracked = make(map[S][]S)
	var zeroS S
	var zeroA A
	a.prev, a.action, a.started = zeroS, zeroA, false
}

// Act implements Agent.
func (a *DFSAgent[S, A]) Act(s S) (A, bool) {
	var none A
	if a == nil {
		return none, false
	}
	if a.p.Goal(s) {
		a.prev, a.action, a.started = s, none, false
		return none, false
	}
	if _, seen := a.untried[s]; !seen {
		a.untried[s] = append([]A(nil), a.p.Actions(s)...)
	}
	if a.started {
		key := transition[S, A]{a.prev, a.action}
		if known, ok := a.result[key]; !ok || known != s {
			a.result[key] = s
			a.unbacktracked[s] = append([]S{a.prev}, a.unbacktracked[s]...)
		}
	}

	next, ok := a.choose(s)
	a.prev, a.action, a.started = s, next, ok

	return next, ok
}

func (a *DFSAgent[S, A]) choose(s S) (A, bool) {
	var none A
	if untried := a.untried[s]; len(untried) > 0 {
		a.untried[s] = untried[1:]
		return untried[0], true
	}
	back := a.unbacktracked[s]
	if len(back) == 0 {
		return none, false
	}
	target := back[0]
	a.unbacktracked[s] = back[1:]
	for _, b := range a.p.Actions(s) {
		if next, ok := a.result[transition[S, A]{s, b}]; ok && next == target {
			return b, true
		}
	}

	return none, false
}
