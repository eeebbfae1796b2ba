// Package nqueens provides the n-queens puzzle: place n queens on an n×n
// board so that no two share a row, column or diagonal.
//
// Two formulations are offered:
//
//   - Incremental(n): start empty and add queens column by column, only on
//     safe rows. Suited to breadth-first, depth-first and iterative
//     deepening search.
//   - CompleteState(board): start with n queens and move one queen within its
//     column per step. Suited to hill climbing and simulated annealing with
//     AttackingPairs as the heuristic.
//
// For genetic algorithms a full board is a gene string of rows, one per
// column (Board.Rows and FromRows convert), scored by NonAttackingPairs and
// goal-tested by SolvedRows.
//
// Boards support up to MaxN columns and are plain values, so they can be
// stored in explored sets and frontier indexes.
package nqueens
