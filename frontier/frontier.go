// Package frontier implements the search open list over core.Node values,
// composing a queue discipline with an optional state index.
package frontier

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Frontier is a queue of nodes awaiting expansion.
// It is not safe for concurrent use; each search run owns its own Frontier.
type Frontier[S comparable, A comparable] struct {
	q      discipline[S, A]
	eval   Eval[S, A] // nil for FIFO/LIFO
	policy DuplicatePolicy
	index  map[S]*entry[S, A] // RejectDuplicates / ReplaceIfCheaper
	counts map[S]int          // AllowDuplicates
	seq    uint64
	maxLen int
}

// NewFIFO returns a first-in-first-out frontier.
func NewFIFO[S comparable, A comparable](opts ...Option) *Frontier[S, A] {
	o := build(opts)

	return newFrontier(&fifoQueue[S, A]{items: make([]*entry[S, A], 0, o.Capacity)}, nil, o)
}

// NewLIFO returns a last-in-first-out frontier.
func NewLIFO[S comparable, A comparable](opts ...Option) *Frontier[S, A] {
	o := build(opts)

	return newFrontier(&lifoStack[S, A]{items: make([]*entry[S, A], 0, o.Capacity)}, nil, o)
}

// NewPriority returns a frontier popping the node with the lowest f(node),
// ties broken by insertion order. f must not be nil.
func NewPriority[S comparable, A comparable](f Eval[S, A], opts ...Option) *Frontier[S, A] {
	o := build(opts)

	return newFrontier(&priorityQueue[S, A]{h: make(entryHeap[S, A], 0, o.Capacity)}, f, o)
}

func build(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func newFrontier[S comparable, A comparable](q discipline[S, A], f Eval[S, A], o Options) *Frontier[S, A] {
	fr := &Frontier[S, A]{q: q, eval: f, policy: o.Policy}
	if o.Policy == AllowDuplicates {
		fr.counts = make(map[S]int, o.Capacity)
	} else {
		fr.index = make(map[S]*entry[S, A], o.Capacity)
	}

	return fr
}

// Policy returns the duplicate-state policy.
func (f *Frontier[S, A]) Policy() DuplicatePolicy { return f.policy }

// Len returns the number of queued nodes.
func (f *Frontier[S, A]) Len() int { return f.q.len() }

// Empty reports whether no node is queued.
func (f *Frontier[S, A]) Empty() bool { return f.q.len() == 0 }

// MaxLen returns the largest Len observed since construction.
func (f *Frontier[S, A]) MaxLen() int { return f.maxLen }

// Contains reports whether a node for state is queued.
func (f *Frontier[S, A]) Contains(state S) bool {
	if f.index != nil {
		_, ok := f.index[state]
		return ok
	}

	return f.counts[state] > 0
}

// Get returns the queued node for state. It only works on indexed frontiers
// (RejectDuplicates, ReplaceIfCheaper); otherwise it reports false.
func (f *Frontier[S, A]) Get(state S) (*core.Node[S, A], bool) {
	e, ok := f.index[state]
	if !ok {
		return nil, false
	}

	return e.node, true
}

// Add queues n according to the duplicate policy.
//
//   - AllowDuplicates: always queued.
//   - RejectDuplicates: ErrDuplicateState if n.State is already queued.
//   - ReplaceIfCheaper: if n.State is queued, the cheaper of the two nodes is
//     kept and the other discarded; no error either way.
func (f *Frontier[S, A]) Add(n *core.Node[S, A]) error {
	if e, ok := f.index[n.State]; ok {
		if f.policy == RejectDuplicates {
			return fmt.Errorf("%w: %v", ErrDuplicateState, n.State)
		}
		f.replace(e, n)

		return nil
	}
	f.push(n)

	return nil
}

// AddAll adds every node in order, stopping at the first error.
func (f *Frontier[S, A]) AddAll(nodes []*core.Node[S, A]) error {
	for _, n := range nodes {
		if err := f.Add(n); err != nil {
			return err
		}
	}

	return nil
}

// ReplaceIfCheaper swaps the queued node for n.State with n when n has a
// strictly lower path cost, and reports whether it did. It never queues a new
// state and always reports false on an AllowDuplicates frontier.
func (f *Frontier[S, A]) ReplaceIfCheaper(n *core.Node[S, A]) bool {
	e, ok := f.index[n.State]
	if !ok {
		return false
	}

	return f.replace(e, n)
}

// Pop removes and returns the next node; false when empty.
func (f *Frontier[S, A]) Pop() (*core.Node[S, A], bool) {
	if f.q.len() == 0 {
		return nil, false
	}
	e := f.q.pop()
	if f.index != nil {
		delete(f.index, e.node.State)
	} else if c := f.counts[e.node.State]; c > 1 {
		f.counts[e.node.State] = c - 1
	} else {
		delete(f.counts, e.node.State)
	}

	return e.node, true
}

func (f *Frontier[S, A]) push(n *core.Node[S, A]) {
	e := &entry[S, A]{node: n, seq: f.nextSeq()}
	if f.eval != nil {
		e.priority = f.eval(n)
	}
	f.q.push(e)
	if f.index != nil {
		f.index[n.State] = e
	} else {
		f.counts[n.State]++
	}
	if l := f.q.len(); l > f.maxLen {
		f.maxLen = l
	}
}

func (f *Frontier[S, A]) replace(e *entry[S, A], n *core.Node[S, A]) bool {
	if n.PathCost >= e.node.PathCost {
		return false
	}
	e.node = n
	e.seq = f.nextSeq()
	if f.eval != nil {
		e.priority = f.eval(n)
	}
	f.q.fix(e)

	return true
}

func (f *Frontier[S, A]) nextSeq() uint64 {
	f.seq++
	return f.seq
}
