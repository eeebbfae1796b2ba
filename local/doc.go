// Package local provides local search over any core.Problem: steepest-ascent
// hill climbing and simulated annealing, plus a genetic algorithm over fixed
// length gene strings.
//
// Local search keeps a single current node instead of a frontier and scores
// states by value = -h(state), so it climbs towards lower heuristic values.
// Neither algorithm guarantees a solution: the Outcome is Solved only when
// the node the run stops at is a goal, and Final always holds that node.
//
// Hill climbing stops at the first node none of whose successors is strictly
// better. Simulated annealing moves to a random successor, taking worse moves
// with probability e^(ΔE/T), and stops once its Schedule reaches 0.
//
// Genetic does not use a Problem. It breeds a population of []G individuals
// by roulette selection, one-point crossover and single-gene mutation until
// the fittest individual passes a goal test, and reports an Evolution.
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per step.
//   - WithRand(rng):     random source (default: seeded with 1).
//   - WithMaxSteps(n):   stop with core.StatusCutoff after n steps
//     (generations for Genetic, DefaultGenerations when 0).
//   - WithMutationRate(p): Genetic's per-child mutation chance (default 0.15).
//   - WithLogger(l):     logrus.FieldLogger for a Debug entry per run.
//   - WithOnStep(fn):    hook called with (state, value) before each step.
//
// Metrics
//
//	nodesExpanded, nodeValue and, for simulated annealing, temperature.
//	Genetic records generations, populationSize and nodeValue.
package local
