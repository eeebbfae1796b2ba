// Package online provides agents that search by acting: they do not know the
// transition model in advance and learn where actions lead by executing them
// in an Environment.
//
//   - LRTAStar: learning real-time A*. Keeps a table of cost-to-go estimates
//     seeded from a heuristic and updates it after every move. Complete in
//     finite, safely explorable spaces.
//   - DFSAgent: online depth-first exploration. Needs reversible actions to
//     backtrack.
//
// Run drives an Agent through an Environment and records the Episode.
// Simulate turns any core.Problem into an Environment, and FromProblem strips
// its transition model so an agent only sees what it may know.
//
// Agents keep per-run tables and are not safe for concurrent use; call Reset
// before reusing one on a different environment.
package online
