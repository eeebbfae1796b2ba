package frontier

import (
	"container/heap"

	"github.com/katalvlaran/lvsearch/core"
)

// entry is one queued node plus the bookkeeping its discipline needs.
type entry[S comparable, A comparable] struct {
	node     *core.Node[S, A]
	priority float64 // f(node); unused by FIFO/LIFO
	seq      uint64  // insertion order, breaks priority ties
	index    int     // heap position; unused by FIFO/LIFO
}

// discipline is a pop-order strategy.
// fix is called after an entry's node was swapped for a cheaper one.
type discipline[S comparable, A comparable] interface {
	push(e *entry[S, A])
	pop() *entry[S, A]
	len() int
	fix(e *entry[S, A])
}

// fifoQueue pops the earliest pushed entry. The consumed prefix is
// released once it outgrows the live part.
type fifoQueue[S comparable, A comparable] struct {
	items []*entry[S, A]
	head  int
}

func (q *fifoQueue[S, A]) push(e *entry[S, A]) { q.items = append(q.items, e) }

func (q *fifoQueue[S, A]) pop() *entry[S, A] {
	e := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return e
}

func (q *fifoQueue[S, A]) len() int { return len(q.items) - q.head }

// fix keeps the replaced entry at its original position.
func (q *fifoQueue[S, A]) fix(*entry[S, A]) {}

// lifoStack pops the most recently pushed entry.
type lifoStack[S comparable, A comparable] struct {
	items []*entry[S, A]
}

func (s *lifoStack[S, A]) push(e *entry[S, A]) { s.items = append(s.items, e) }

func (s *lifoStack[S, A]) pop() *entry[S, A] {
	n := len(s.items) - 1
	e := s.items[n]
	s.items[n] = nil
	s.items = s.items[:n]

	return e
}

func (s *lifoStack[S, A]) len() int { return len(s.items) }

func (s *lifoStack[S, A]) fix(*entry[S, A]) {}

// priorityQueue pops the entry with the lowest (priority, seq).
type priorityQueue[S comparable, A comparable] struct {
	h entryHeap[S, A]
}

func (q *priorityQueue[S, A]) push(e *entry[S, A]) { heap.Push(&q.h, e) }

func (q *priorityQueue[S, A]) pop() *entry[S, A] { return heap.Pop(&q.h).(*entry[S, A]) }

func (q *priorityQueue[S, A]) len() int { return q.h.Len() }

func (q *priorityQueue[S, A]) fix(e *entry[S, A]) { heap.Fix(&q.h, e.index) }

// entryHeap is a min-heap of entries ordered by priority, then seq.
type entryHeap[S comparable, A comparable] []*entry[S, A]

// Len returns the number of entries in the heap.
func (h entryHeap[S, A]) Len() int { return len(h) }

// Less orders by priority and falls back to insertion order.
func (h entryHeap[S, A]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries and keeps their indices current.
func (h entryHeap[S, A]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x; called by heap.Push.
func (h *entryHeap[S, A]) Push(x any) {
	e := x.(*entry[S, A])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop removes the last entry; called by heap.Pop.
func (h *entryHeap[S, A]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}
