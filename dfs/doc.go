// Package dfs provides depth-first search over any core.Problem.
//
// What
//
//   - Search(p, opts...): graph search over a LIFO frontier with an explored
//     set. Finds some solution on finite spaces; not optimal.
//   - DepthLimited(p, limit, opts...): recursive depth-first search that never
//     expands below limit. Distinguishes StatusCutoff (the limit was hit
//     somewhere) from StatusFailure (no goal anywhere within reach).
//   - IterativeDeepening(p, opts...): DepthLimited for limit = 0, 1, 2, ...
//     until a solution, an exhausted space or the WithMaxDepth cap.
//
// Why
//
//   - Depth-limited and iterative deepening use memory linear in the depth.
//   - Iterative deepening finds a shallowest solution, like BFS, while
//     re-expanding the upper layers on every iteration.
//
// Complexity (b = branching factor, d = solution depth, l = limit)
//
//   - DepthLimited:       time O(b^l), memory O(l)
//   - IterativeDeepening: time O(b^d), memory O(d)
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per visited node.
//   - WithMaxDepth(d):   highest limit IterativeDeepening will try (>= 0).
//   - WithAvoidLoops():  skip children whose state is already on the path.
//   - WithLogger(l):     logrus.FieldLogger for Debug entries.
//   - WithOnVisit(fn):   hook called with (state, depth) per expansion.
//
// Errors
//
//   - core.ErrNilProblem, core.ErrIncompleteProblem for a malformed problem.
//   - ErrOptionViolation for a negative limit or MaxDepth.
//   - Errors returned by Problem.Result, and ctx.Err() on cancellation.
package dfs
