// Package routemap models road maps as route-finding problems: locations are
// states, "drive to neighbor X" is an action, and link distances are step
// costs.
package routemap

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsearch/bidirectional"
	"github.com/katalvlaran/lvsearch/core"
)

// AddLocation registers name. Adding an existing location is a no-op.
func (m *Map) AddLocation(name string) error {
	if name == "" {
		return ErrEmptyLocation
	}
	if _, ok := m.known[name]; ok {
		return nil
	}
	m.known[name] = struct{}{}
	m.locations = append(m.locations, name)
	m.links[name] = make(map[string]float64)

	return nil
}

// AddLink joins a and b in both directions with distance d, registering
// missing locations. Re-adding a link overwrites its distance.
func (m *Map) AddLink(a, b string, d float64) error {
	if err := m.AddOneWayLink(a, b, d); err != nil {
		return err
	}

	return m.AddOneWayLink(b, a, d)
}

// AddOneWayLink joins a to b only.
func (m *Map) AddOneWayLink(a, b string, d float64) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLink, a)
	}
	if d < 0 || math.IsNaN(d) {
		return fmt.Errorf("%w: %s->%s = %g", ErrNegativeDistance, a, b, d)
	}
	if err := m.AddLocation(a); err != nil {
		return err
	}
	if err := m.AddLocation(b); err != nil {
		return err
	}
	if _, ok := m.links[a][b]; !ok {
		m.order[a] = append(m.order[a], b)
	}
	m.links[a][b] = d

	return nil
}

// SetPosition records the planar position of loc, registering it if missing.
func (m *Map) SetPosition(loc string, p Point) error {
	if err := m.AddLocation(loc); err != nil {
		return err
	}
	m.positions[loc] = p

	return nil
}

// Position returns the position of loc, if one was set.
func (m *Map) Position(loc string) (Point, bool) {
	p, ok := m.positions[loc]
	return p, ok
}

// Has reports whether loc is on the map.
func (m *Map) Has(loc string) bool {
	_, ok := m.known[loc]
	return ok
}

// Locations returns every location sorted ascending.
func (m *Map) Locations() []string {
	out := append([]string(nil), m.locations...)
	sort.Strings(out)

	return out
}

// Neighbors returns the locations directly reachable from loc, in link order.
func (m *Map) Neighbors(loc string) []string {
	return append([]string(nil), m.order[loc]...)
}

// Predecessors returns the links arriving at loc, as "drive from From to loc"
// steps, in location insertion order. It reverses the Problem transitions.
func (m *Map) Predecessors(loc string) []bidirectional.Step[string, string] {
	var out []bidirectional.Step[string, string]
	for _, from := range m.locations {
		if _, ok := m.links[from][loc]; ok {
			out = append(out, bidirectional.Step[string, string]{From: from, Action: loc})
		}
	}

	return out
}

// Distance returns the link distance from a to b.
func (m *Map) Distance(a, b string) (float64, bool) {
	d, ok := m.links[a][b]
	return d, ok
}

// Problem returns a route-finding problem from -> to. Actions are destination
// names; applying an action with no matching link fails with
// core.ErrInvalidAction.
func (m *Map) Problem(from, to string) (*core.Problem[string, string], error) {
	for _, loc := range []string{from, to} {
		if !m.Has(loc) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
		}
	}

	return &core.Problem[string, string]{
		Initial: from,
		Actions: m.Neighbors,
		Result: func(s, a string) (string, error) {
			if _, ok := m.links[s][a]; !ok {
				return s, fmt.Errorf("%w: no link %s->%s", core.ErrInvalidAction, s, a)
			}
			return a, nil
		},
		Goal: func(s string) bool { return s == to },
		StepCost: func(s, _ string, next string) float64 {
			return m.links[s][next]
		},
	}, nil
}

// StraightLine returns a heuristic estimating the distance to goal as the
// Euclidean distance between positions. Locations without a position score 0,
// which keeps the heuristic admissible.
func (m *Map) StraightLine(goal string) func(string) float64 {
	target, ok := m.positions[goal]
	return func(loc string) float64 {
		p, has := m.positions[loc]
		if !ok || !has {
			return 0
		}
		return p.Dist(target)
	}
}

// ShortestCost returns the minimum total distance from a to b by repeated
// relaxation of every link (Bellman-Ford). It is a reference computation for
// checking search results, O(V·E).
func (m *Map) ShortestCost(a, b string) (float64, bool) {
	return m.relax(a, b, func(d float64) float64 { return d })
}

// ShortestHops returns the minimum number of links from a to b.
func (m *Map) ShortestHops(a, b string) (int, bool) {
	d, ok := m.relax(a, b, func(float64) float64 { return 1 })
	return int(d), ok
}

func (m *Map) relax(a, b string, weight func(float64) float64) (float64, bool) {
	if !m.Has(a) || !m.Has(b) {
		return 0, false
	}
	dist := map[string]float64{a: 0}
	for i := 0; i < len(m.locations); i++ {
		changed := false
		for _, from := range m.locations {
			df, ok := dist[from]
			if !ok {
				continue
			}
			for _, to := range m.order[from] {
				nd := df + weight(m.links[from][to])
				if cur, seen := dist[to]; !seen || nd < cur {
					dist[to] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	d, ok := dist[b]

	return d, ok
}
