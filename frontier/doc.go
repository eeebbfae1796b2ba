// Package frontier provides the open list of a search: the container of nodes
// that have been generated but not yet expanded.
//
// What
//
//   - One Frontier type whose pop order comes from an injected queue discipline:
//   - NewFIFO:      earliest inserted first (breadth-first search).
//   - NewLIFO:      most recently inserted first (depth-first search).
//   - NewPriority:  minimum f(node) first (uniform-cost, A*, greedy); ties are
//     broken by insertion order so results are reproducible.
//   - Optional state index selected with WithDuplicatePolicy:
//   - AllowDuplicates  (default): any number of nodes per state.
//   - RejectDuplicates: Add of a state already present fails with ErrDuplicateState.
//   - ReplaceIfCheaper: Add of a state already present keeps whichever node
//     has the lower path cost and drops the other.
//
// Determinism
//
//	FIFO and LIFO depend only on Add order. Priority order is (f, insertion
//	sequence), so equal-f nodes come out in the order they went in. A node
//	that replaces a costlier one takes a fresh sequence number.
//
// Complexity
//
//   - FIFO/LIFO: Add and Pop are amortized O(1).
//   - Priority:  Add, Pop and replacement are O(log n).
//   - Contains is O(1) in every policy.
//
// Errors
//
//   - ErrDuplicateState from Add under RejectDuplicates.
package frontier
