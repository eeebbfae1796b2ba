// Package lvsearch is a toolbox of classic state-space search algorithms,
// from blind tree walks to informed, local and online search, together with
// a handful of ready-made problem domains to run them on.
//
// 🚀 What is lvsearch?
//
//	A generic library (states and actions are any comparable types) that brings together:
//		• Problem model: initial state, actions, transition, goal test, step cost
//		• Frontiers: FIFO, LIFO and priority queues with replace-on-better
//		• Uninformed search: BFS, bidirectional BFS, DFS, depth-limited, iterative deepening, UCS
//		• Informed search: best-first, greedy, A*, recursive best-first (RBFS)
//		• Local search: steepest-ascent hill climbing, simulated annealing, genetic algorithm
//		• Online agents: LRTA* and online DFS interleaving planning with acting
//		• Metrics: nodesExpanded, queueSize, maxQueueSize, pathCost and more
//
// ✨ Why choose lvsearch?
//
//   - Uniform results: every path search returns a core.Result with a Status
//     (Solved, Failure, Cutoff), the action list and its metrics
//   - Cancellable: every blocking search honours a context.Context
//   - Observable: logrus loggers and OnExpand/OnVisit/OnStep hooks, plus
//     Prometheus collectors in instrument
//   - Functional options: bad option values surface as sentinel errors,
//     never panics
//
// Packages:
//
//	core/                                       Problem, Node, Result, Metrics
//	frontier/                                   FIFO, LIFO and priority frontiers
//	graphsearch/                                the shared tree/graph search driver
//	bfs/ dfs/ ucs/ bestfirst/ rbfs/             offline algorithms
//	bidirectional/                              BFS from both ends, joined where they meet
//	local/                                      hill climbing, simulated annealing, genetic algorithm
//	online/                                     LRTA* and online DFS agents, environment loop
//	instrument/                                 Prometheus collectors for search runs
//	routemap/ eightpuzzle/ nqueens/ gridgraph/  problem domains
//	cmd/lvsearch                                command-line front end
//
// Quick example:
//
//	p, _ := routemap.Romania().Problem(routemap.Arad, routemap.Bucharest)
//	res, _ := bestfirst.AStar(p, routemap.StraightLineToBucharest)
//	fmt.Println(res.Actions, res.PathCost) // [Sibiu Rimnicu Vilcea Pitesti Bucharest] 418
package lvsearch
