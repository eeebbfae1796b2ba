// Package eightpuzzle provides the 8-puzzle: eight numbered tiles and one
// blank on a 3×3 board, solved by sliding tiles into the blank.
//
// States are Board values (comparable arrays, usable as map keys), actions
// move the blank Up, Down, Left or Right, and every move costs 1. The goal
// layout puts the blank in the top-left corner:
//
//	_ 1 2
//	3 4 5
//	6 7 8
//
// Heuristics
//
//   - Manhattan: total row+column distance of tiles to their home cells.
//   - Misplaced: number of tiles out of place.
//
// Both are admissible; Manhattan dominates Misplaced.
//
// Only half of the 9! layouts can reach the goal; Solvable tells which.
// Scramble produces solvable boards by random walks from the goal.
package eightpuzzle
