package core

import "maps"

// Well-known metric keys.
const (
	MetricNodesExpanded     = "nodesExpanded"
	MetricQueueSize         = "queueSize"
	MetricMaxQueueSize      = "maxQueueSize"
	MetricPathCost          = "pathCost"
	MetricMaxRecursiveDepth = "maxRecursiveDepth"
	MetricExploredStates    = "exploredStates"
	MetricDepthLimit        = "depthLimit"
	MetricTemperature       = "temperature"
	MetricNodeValue         = "nodeValue"
)

// Metrics is a string-keyed counter map scoped to one search invocation.
// Reading a missing key yields 0.
type Metrics map[string]float64

// NewMetrics returns an empty Metrics.
func NewMetrics() Metrics { return make(Metrics) }

// Inc adds one to key.
func (m Metrics) Inc(key string) { m[key]++ }

// Add adds delta to key.
func (m Metrics) Add(key string, delta float64) { m[key] += delta }

// Set stores v under key.
func (m Metrics) Set(key string, v float64) { m[key] = v }

// Get returns the value under key, or 0.
func (m Metrics) Get(key string) float64 { return m[key] }

// Int returns the value under key truncated to int.
func (m Metrics) Int(key string) int { return int(m[key]) }

// Max stores v under key if it exceeds the current value.
func (m Metrics) Max(key string, v float64) {
	if cur, ok := m[key]; !ok || v > cur {
		m[key] = v
	}
}

// Clone returns an independent copy of m.
func (m Metrics) Clone() Metrics { return maps.Clone(m) }
