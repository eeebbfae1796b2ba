package routemap

import (
	"fmt"
	"math/rand"
)

const (
	randomFieldSize = 100.0
	probMin         = 0.0
	probMax         = 1.0
)

// Random samples a map of n locations "v0".."v(n-1)" placed uniformly in a
// 100×100 field. Each unordered pair {i,j} (i<j) is linked with probability p.
// A link's distance is the Euclidean distance between its endpoints stretched
// by a random factor in [1,2), so StraightLine is admissible and consistent on
// the result.
//
// Determinism: locations are created in index order and pairs are tried in
// (i asc, j asc) order, so a fixed seed yields the same map.
//
// Complexity: O(n²) time, O(n + E) space.
func Random(rng *rand.Rand, n int, p float64) (*Map, error) {
	if n < 1 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrTooFewLocations)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("Random: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	m := New()
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("v%d", i)
		// cannot fail: names are non-empty
		_ = m.SetPosition(names[i], Point{X: rng.Float64() * randomFieldSize, Y: rng.Float64() * randomFieldSize})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			pi, pj := m.positions[names[i]], m.positions[names[j]]
			d := pi.Dist(pj) * (1 + rng.Float64())
			if err := m.AddLink(names[i], names[j], d); err != nil {
				return nil, fmt.Errorf("Random: AddLink(%s,%s): %w", names[i], names[j], err)
			}
		}
	}

	return m, nil
}
