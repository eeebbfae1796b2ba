// Package routemap turns weighted road maps into route-finding problems.
//
// What
//
//   - Map: named locations joined by non-negative links, with optional planar
//     positions. Links added with AddLink are bidirectional.
//   - Problem(from, to): a core.Problem whose states and actions are location
//     names; the action "X" means "drive to neighbor X".
//   - StraightLine(goal): Euclidean distance heuristic built from positions.
//   - Romania(): the classic 20-city road map, with StraightLineToBucharest as
//     its tabulated heuristic.
//   - Random(rng, n, p): seeded synthetic maps whose link distances are never
//     shorter than the straight line, so StraightLine stays admissible.
//   - ShortestCost / ShortestHops: brute-force relaxation used as a reference
//     when checking search results.
//
// Determinism
//
//	Neighbors come back in the order their links were added, and Random walks
//	pairs in index order, so a fixed seed reproduces both map and searches.
//
// Errors
//
//   - ErrEmptyLocation, ErrSelfLink, ErrNegativeDistance from map building.
//   - ErrUnknownLocation from Problem.
//   - ErrTooFewLocations, ErrInvalidProbability, ErrNeedRandSource from Random.
//   - core.ErrInvalidAction when a problem is asked to drive along a missing link.
package routemap
