// Package routemap defines the Map type, options and sentinel errors for
// weighted road maps used as route-finding problems.
package routemap

import (
	"errors"
	"math"
)

// Sentinel errors for map construction and queries.
var (
	// ErrEmptyLocation indicates a location name is the empty string.
	ErrEmptyLocation = errors.New("routemap: location name is empty")

	// ErrUnknownLocation indicates a query referenced a location not on the map.
	ErrUnknownLocation = errors.New("routemap: unknown location")

	// ErrNegativeDistance indicates a link with a negative or NaN distance.
	ErrNegativeDistance = errors.New("routemap: distance must be non-negative")

	// ErrSelfLink indicates a link from a location to itself.
	ErrSelfLink = errors.New("routemap: self-links are not allowed")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("routemap: probability must lie in [0,1]")

	// ErrTooFewLocations indicates a generator was asked for fewer than one location.
	ErrTooFewLocations = errors.New("routemap: at least one location required")

	// ErrNeedRandSource indicates a nil *rand.Rand was passed to a generator.
	ErrNeedRandSource = errors.New("routemap: random source is required")
)

// Point is a planar position used by straight-line heuristics.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Map is a set of named locations joined by weighted links.
//
// Neighbors are reported in the order their links were added, so searches
// over a Map are reproducible. A Map is not safe for concurrent mutation;
// once built it may be searched from many goroutines.
type Map struct {
	locations []string                      // insertion order
	known     map[string]struct{}           // location set
	links     map[string]map[string]float64 // from -> to -> distance
	order     map[string][]string           // from -> neighbors, insertion order
	positions map[string]Point
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		known:     make(map[string]struct{}),
		links:     make(map[string]map[string]float64),
		order:     make(map[string][]string),
		positions: make(map[string]Point),
	}
}
